package progress

import (
	"bytes"
	"context"
	"testing"

	"github.com/dappctl/dappctl/internal/usecase"
	"github.com/stretchr/testify/assert"
)

func TestPlainSink(t *testing.T) {
	var buf bytes.Buffer
	sink := NewPlainSink(&buf)

	sink.OnProgress(context.Background(), usecase.ProgressEvent{Stage: "deploying", Message: "Deploying Voting", Spinner: true})
	sink.Info("Voting smart contract address: 0x5FbDB2315678afecb367f032d93F642f64180aa3")

	assert.Equal(t, "Voting smart contract address: 0x5FbDB2315678afecb367f032d93F642f64180aa3\n", buf.String())
}
