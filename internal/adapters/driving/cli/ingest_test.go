package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grantu-labs/grantbot/internal/core/domain"
	"github.com/grantu-labs/grantbot/internal/core/ports/driving"
)

func TestIngestCmd_Use(t *testing.T) {
	assert.Equal(t, "ingest", ingestCmd.Use)
}

func TestIngestCmd_Long(t *testing.T) {
	assert.Contains(t, ingestCmd.Long, "batches")
	assert.Contains(t, ingestCmd.Long, "--stable")
}

func TestIngestCmd_HasFlags(t *testing.T) {
	flag := ingestCmd.Flags().Lookup("batch-size")
	require.NotNil(t, flag, "batch-size flag should exist")

	flag = ingestCmd.Flags().Lookup("stable")
	require.NotNil(t, flag, "stable flag should exist")
	assert.Equal(t, "false", flag.DefValue)

	flag = ingestCmd.Flags().Lookup("rps")
	require.NotNil(t, flag, "rps flag should exist")
}

func TestIngestCmd_Executes(t *testing.T) {
	cleanup, _, _ := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"ingest"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Indexed 3 profiles in 1 batches")
}

func TestIngestCmd_StableFlagSetsMode(t *testing.T) {
	cleanup, ingest, _ := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"ingest", "--stable", "--batch-size", "25"})
	defer func() {
		rootCmd.SetArgs(nil)
		ingestStable = false
		ingestBatchSize = 0
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Equal(t, domain.IngestModeStable, ingest.settings.Mode)
	assert.Equal(t, 25, ingest.settings.BatchSize)
}

func TestIngestCmd_EmptySource(t *testing.T) {
	cleanup, ingest, _ := setupTestServices()
	defer cleanup()
	ingest.report = &driving.IngestReport{}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"ingest"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "nothing to index")
}

func TestIngestCmd_PartialFailure(t *testing.T) {
	cleanup, ingest, _ := setupTestServices()
	defer cleanup()
	ingest.report = &driving.IngestReport{Fetched: 250, Indexed: 100, Batches: 1}
	ingest.err = errMockFailure

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"ingest"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, buf.String(), "Indexed 100 of 250 profiles")
}

func TestIngestCmd_NotConfigured(t *testing.T) {
	old := ingestFactory
	ingestFactory = nil
	defer func() { ingestFactory = old }()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"ingest"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ingest service not configured")
}
