package storage

import (
	"context"
	"patient-record-service/internal/app/contracts"
	"patient-record-service/internal/app/models"
	"patient-record-service/internal/pkg/constvars"
	"patient-record-service/internal/pkg/exceptions"
	"patient-record-service/internal/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// patientDocument keeps the collection order, which a mongo collection does
// not preserve on its own.
type patientDocument struct {
	Position       int `bson:"position"`
	models.Patient `bson:",inline"`
}

type mongoPatientStorage struct {
	Collection *mongo.Collection
	Log        *zap.Logger
}

func NewMongoPatientStorage(db *mongo.Database, collectionName string, logger *zap.Logger) contracts.PatientStorage {
	return &mongoPatientStorage{
		Collection: db.Collection(collectionName),
		Log:        logger,
	}
}

func (s *mongoPatientStorage) Load(ctx context.Context) ([]models.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	collectionName := s.Collection.Name()
	s.Log.Debug("mongoPatientStorage.Load called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCollectionKey, collectionName),
	)

	findOptions := options.Find().SetSort(bson.D{{Key: "position", Value: 1}})
	cursor, err := s.Collection.Find(ctx, bson.D{}, findOptions)
	if err != nil {
		s.Log.Error("mongoPatientStorage.Load error finding documents",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCollectionKey, collectionName),
			zap.Error(err),
		)
		return nil, exceptions.ErrStorageRead(exceptions.ErrMongoDBFindDocuments(err, collectionName), constvars.StorageBackendMongoDB)
	}
	defer cursor.Close(ctx)

	patients := []models.Patient{}
	for cursor.Next(ctx) {
		var document patientDocument
		err = cursor.Decode(&document)
		if err != nil {
			s.Log.Warn("Patient collection holds an unparsable document, starting from an empty collection",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingCollectionKey, collectionName),
				zap.Error(err),
			)
			return []models.Patient{}, nil
		}
		patients = append(patients, document.Patient)
	}

	err = cursor.Err()
	if err != nil {
		s.Log.Error("mongoPatientStorage.Load error iterating documents",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCollectionKey, collectionName),
			zap.Error(err),
		)
		return nil, exceptions.ErrStorageRead(exceptions.ErrMongoDBFindDocuments(err, collectionName), constvars.StorageBackendMongoDB)
	}

	return patients, nil
}

// Save replaces every document of the collection with the given records.
func (s *mongoPatientStorage) Save(ctx context.Context, patients []models.Patient) error {
	requestID := utils.GetRequestID(ctx)
	collectionName := s.Collection.Name()
	s.Log.Debug("mongoPatientStorage.Save called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCollectionKey, collectionName),
		zap.Int(constvars.LoggingPatientCountKey, len(patients)),
	)

	_, err := s.Collection.DeleteMany(ctx, bson.D{})
	if err != nil {
		s.Log.Error("mongoPatientStorage.Save error clearing collection",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCollectionKey, collectionName),
			zap.Error(err),
		)
		return exceptions.ErrStorageWrite(exceptions.ErrMongoDBReplaceDocuments(err, collectionName), constvars.StorageBackendMongoDB)
	}

	if len(patients) == 0 {
		return nil
	}

	documents := make([]interface{}, 0, len(patients))
	for position, patient := range patients {
		documents = append(documents, patientDocument{Position: position, Patient: patient})
	}

	_, err = s.Collection.InsertMany(ctx, documents, options.InsertMany().SetOrdered(true))
	if err != nil {
		s.Log.Error("mongoPatientStorage.Save error inserting documents",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCollectionKey, collectionName),
			zap.Error(err),
		)
		return exceptions.ErrStorageWrite(exceptions.ErrMongoDBReplaceDocuments(err, collectionName), constvars.StorageBackendMongoDB)
	}

	return nil
}
