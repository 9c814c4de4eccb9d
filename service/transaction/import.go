package transaction

import (
	"context"
	"fmt"
	"os"

	"github.com/QuangTung97/loyalty/pkg/otellib"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// ImportFile is a YAML document with the transactions of one or many points of sale
type ImportFile struct {
	Transactions []RegisterInput `yaml:"transactions"`
}

// LoadImportFile ...
func LoadImportFile(path string) (ImportFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ImportFile{}, fmt.Errorf("reading transactions %s: %w", path, err)
	}
	return ParseImportFile(data)
}

// ParseImportFile ...
func ParseImportFile(data []byte) (ImportFile, error) {
	var file ImportFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return ImportFile{}, fmt.Errorf("parsing transactions: %w", err)
	}
	return file, nil
}

// ImportResult ...
type ImportResult struct {
	DocumentNumber string
	TransactionID  string
	Err            error
}

// Import registers every transaction of the file in order, a failed document does not stop the others
func Import(ctx context.Context, s IService, file ImportFile) []ImportResult {
	results := make([]ImportResult, 0, len(file.Transactions))
	for _, input := range file.Transactions {
		id, err := s.Register(ctx, input)
		if err != nil {
			otellib.Extract(ctx).Warn("transaction not registered",
				zap.String("document_number", input.DocumentNumber), zap.Error(err))
		}
		results = append(results, ImportResult{
			DocumentNumber: input.DocumentNumber,
			TransactionID:  id,
			Err:            err,
		})
	}
	return results
}
