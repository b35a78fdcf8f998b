package storage

import (
	"bytes"
	"patient-record-service/internal/app/models"
	"patient-record-service/internal/pkg/constvars"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// encodeDocument renders the collection as an indented JSON array with a
// trailing newline. Output only depends on the collection, so saving what
// was loaded rewrites the same bytes.
func encodeDocument(patients []models.Patient) ([]byte, error) {
	if patients == nil {
		patients = []models.Patient{}
	}

	data, err := json.MarshalIndent(patients, "", constvars.StorageDocumentIndent)
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func decodeDocument(data []byte) ([]models.Patient, error) {
	var patients []models.Patient
	err := json.Unmarshal(data, &patients)
	if err != nil {
		return nil, err
	}
	if patients == nil {
		patients = []models.Patient{}
	}
	return patients, nil
}

// readDocument never fails: an empty or unparsable document is reported and
// treated as an empty collection.
func readDocument(log *zap.Logger, requestID, backend string, data []byte) []models.Patient {
	if len(bytes.TrimSpace(data)) == 0 {
		log.Warn("Patient document is absent, starting from an empty collection",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingStorageBackendKey, backend),
		)
		return []models.Patient{}
	}

	patients, err := decodeDocument(data)
	if err != nil {
		log.Warn("Patient document is unparsable, starting from an empty collection",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingStorageBackendKey, backend),
			zap.Error(err),
		)
		return []models.Patient{}
	}

	return patients
}
