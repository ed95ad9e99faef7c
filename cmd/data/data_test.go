package data_test

import (
	"testing"

	"finchat/cmd/data"

	"github.com/stretchr/testify/assert"
)

func TestDataCommand_Metadata(t *testing.T) {
	assert.Equal(t, "data", data.Cmd.Use)
	assert.Contains(t, data.Cmd.Short, "stored data")

	names := make(map[string]bool)
	for _, sub := range data.Cmd.Commands() {
		names[sub.Name()] = true
	}
	assert.True(t, names["export"])
	assert.True(t, names["export-csv"])
	assert.True(t, names["import"])
	assert.True(t, names["clear"])
}
