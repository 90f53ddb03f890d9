package contracts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/dappctl/dappctl/internal/domain"
	"github.com/dappctl/dappctl/internal/domain/config"
	"github.com/dappctl/dappctl/internal/domain/models"
	"github.com/dappctl/dappctl/internal/usecase"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/sahilm/fuzzy"
)

// foundryOutDir is where forge writes artifacts by default
const foundryOutDir = "out"

// maxSuggestions caps "did you mean" candidates
const maxSuggestions = 3

// Repository discovers compiled artifacts in Hardhat and Foundry layouts
type Repository struct {
	projectRoot  string
	artifactsDir string
	contracts    []*domain.ContractRef            // in path order
	byName       map[string][]*domain.ContractRef // key: contract name
	log          *slog.Logger
	mu           sync.RWMutex
	indexed      bool
}

// NewRepository creates a new artifact repository
func NewRepository(cfg *config.RuntimeConfig, log *slog.Logger) *Repository {
	return &Repository{
		projectRoot:  cfg.ProjectRoot,
		artifactsDir: cfg.ArtifactsDir,
		byName:       make(map[string][]*domain.ContractRef),
		log:          log,
	}
}

// Reset drops the index so the next lookup rescans, e.g. after compiling
func (r *Repository) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.indexed = false
}

// Index discovers all artifacts
func (r *Repository) Index() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexed {
		return nil
	}

	r.contracts = nil
	r.byName = make(map[string][]*domain.ContractRef)

	root, err := r.resolveArtifactsDir()
	if err != nil {
		return err
	}

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == "build-info" || d.Name() == "cache" {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".json" || strings.HasSuffix(path, ".dbg.json") {
			return nil
		}

		ref, err := readContractRef(path)
		if err != nil {
			r.log.Debug("skipping file", "path", path, "error", err)
			return nil
		}

		r.contracts = append(r.contracts, ref)
		r.byName[ref.Name] = append(r.byName[ref.Name], ref)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to scan artifacts: %w", err)
	}

	r.log.Debug("indexed artifacts", "dir", root, "contracts", len(r.contracts))
	r.indexed = true
	return nil
}

// resolveArtifactsDir prefers the configured directory and falls back to forge's out/
func (r *Repository) resolveArtifactsDir() (string, error) {
	candidates := []string{r.artifactsDir, filepath.Join(r.projectRoot, foundryOutDir)}
	for _, dir := range candidates {
		if dir == "" {
			continue
		}
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir, nil
		}
	}
	return "", fmt.Errorf("artifacts directory %s not found, compile the contracts first (or pass --compile)", r.artifactsDir)
}

// FindArtifact looks up a contract by name or "source:Name"
func (r *Repository) FindArtifact(ctx context.Context, query string) (*models.Artifact, error) {
	if err := r.Index(); err != nil {
		return nil, err
	}

	matches := r.match(query)
	switch len(matches) {
	case 0:
		return nil, domain.ContractNotFoundErr{Query: query, Suggestions: r.suggest(query)}
	case 1:
		return r.LoadArtifact(ctx, matches[0])
	default:
		return nil, domain.AmbiguousContractErr{Query: query, Matches: matches}
	}
}

func (r *Repository) match(query string) []*domain.ContractRef {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if idx := strings.LastIndex(query, ":"); idx != -1 {
		source, name := query[:idx], query[idx+1:]
		var matches []*domain.ContractRef
		for _, ref := range r.byName[name] {
			if ref.SourceName == source || strings.HasSuffix(ref.SourceName, "/"+source) {
				matches = append(matches, ref)
			}
		}
		return matches
	}

	if matches := r.byName[query]; len(matches) > 0 {
		return matches
	}

	// Fall back to a case-insensitive name match
	var matches []*domain.ContractRef
	for _, ref := range r.contracts {
		if strings.EqualFold(ref.Name, query) {
			matches = append(matches, ref)
		}
	}
	return matches
}

func (r *Repository) suggest(query string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)

	var suggestions []string
	for _, match := range fuzzy.Find(query, names) {
		suggestions = append(suggestions, match.Str)
		if len(suggestions) == maxSuggestions {
			break
		}
	}
	return suggestions
}

// LoadArtifact reads a full artifact from disk
func (r *Repository) LoadArtifact(ctx context.Context, ref *domain.ContractRef) (*models.Artifact, error) {
	data, err := os.ReadFile(ref.ArtifactPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read artifact: %w", err)
	}

	parsed, err := parseArtifact(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse artifact %s: %w", ref.ArtifactPath, err)
	}

	bytecode, err := decodeBytecode(parsed.bytecode)
	if err != nil {
		return nil, fmt.Errorf("invalid bytecode in %s: %w", ref.ArtifactPath, err)
	}

	return &models.Artifact{
		ContractName: ref.Name,
		SourceName:   ref.SourceName,
		Format:       parsed.format,
		Path:         ref.ArtifactPath,
		ABI:          parsed.abi,
		Bytecode:     bytecode,
		Raw:          data,
	}, nil
}

// ListContracts returns every indexed contract, sorted by fully qualified name
func (r *Repository) ListContracts(ctx context.Context) ([]*domain.ContractRef, error) {
	if err := r.Index(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	refs := make([]*domain.ContractRef, len(r.contracts))
	copy(refs, r.contracts)
	sort.Slice(refs, func(i, j int) bool {
		return refs[i].FullyQualifiedName() < refs[j].FullyQualifiedName()
	})
	return refs, nil
}

// rawArtifact covers the fields both toolchains write
type rawArtifact struct {
	Format       string          `json:"_format"`
	ContractName string          `json:"contractName"`
	SourceName   string          `json:"sourceName"`
	ABI          json.RawMessage `json:"abi"`
	Bytecode     json.RawMessage `json:"bytecode"`
	Metadata     struct {
		Settings struct {
			CompilationTarget map[string]string `json:"compilationTarget"`
		} `json:"settings"`
	} `json:"metadata"`
}

type parsedArtifact struct {
	format       models.ArtifactFormat
	contractName string
	sourceName   string
	abi          json.RawMessage
	bytecode     string
}

var errNotAnArtifact = errors.New("not a contract artifact")

// parseArtifact recognizes Hardhat ("bytecode": "0x...") and Foundry
// ("bytecode": {"object": "0x..."}) artifacts
func parseArtifact(data []byte) (*parsedArtifact, error) {
	var raw rawArtifact
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if len(raw.ABI) == 0 || len(raw.Bytecode) == 0 {
		return nil, errNotAnArtifact
	}

	parsed := &parsedArtifact{
		contractName: raw.ContractName,
		sourceName:   raw.SourceName,
		abi:          raw.ABI,
	}

	var hardhatBytecode string
	if err := json.Unmarshal(raw.Bytecode, &hardhatBytecode); err == nil {
		parsed.format = models.ArtifactFormatHardhat
		parsed.bytecode = hardhatBytecode
		return parsed, nil
	}

	var foundryBytecode struct {
		Object string `json:"object"`
	}
	if err := json.Unmarshal(raw.Bytecode, &foundryBytecode); err != nil {
		return nil, errNotAnArtifact
	}
	parsed.format = models.ArtifactFormatFoundry
	parsed.bytecode = foundryBytecode.Object
	for source, name := range raw.Metadata.Settings.CompilationTarget {
		parsed.sourceName, parsed.contractName = source, name
	}
	return parsed, nil
}

// readContractRef identifies the contract in an artifact file.
// Foundry artifacts without metadata are named after their file and directory.
func readContractRef(path string) (*domain.ContractRef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	parsed, err := parseArtifact(data)
	if err != nil {
		return nil, err
	}

	name, source := parsed.contractName, parsed.sourceName
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), ".json")
	}
	if source == "" {
		source = filepath.Base(filepath.Dir(path))
	}

	return &domain.ContractRef{
		Name:         name,
		SourceName:   source,
		ArtifactPath: path,
	}, nil
}

// decodeBytecode turns creation code into bytes; "0x" and "" mean none
func decodeBytecode(code string) ([]byte, error) {
	code = strings.TrimSpace(code)
	if code == "" || code == "0x" {
		return nil, nil
	}
	if strings.Contains(code, "__") {
		return nil, errors.New("bytecode has unlinked library placeholders")
	}
	if !strings.HasPrefix(code, "0x") {
		code = "0x" + code
	}
	return hexutil.Decode(code)
}

// Ensure the adapter implements the interface
var _ usecase.ArtifactRepository = (*Repository)(nil)
