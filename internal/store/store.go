package store

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/borjaregueral/wrc-speakers-go/internal/domain"
	"github.com/borjaregueral/wrc-speakers-go/pkg/errors"
	"go.uber.org/zap"
)

// Store persists the speaker collection as an indented UTF-8 JSON array and
// a CSV with a header row. Every save overwrites the complete files; nothing
// is appended, so a crash mid-run leaves the last checkpoint intact.
type Store struct {
	jsonPath string
	csvPath  string
	logger   *zap.Logger
}

func New(jsonPath, csvPath string, logger *zap.Logger) *Store {
	return &Store{
		jsonPath: jsonPath,
		csvPath:  csvPath,
		logger:   logger,
	}
}

// Save writes both output files. Errors are logged and returned; callers
// treat a failed save as non-fatal and keep running.
func (s *Store) Save(collection *domain.SpeakerCollection) error {
	if collection == nil || collection.Len() == 0 {
		s.logger.Warn("No data to save")
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(s.jsonPath), 0755); err != nil {
		s.logger.Error("Failed to create output directory", zap.Error(err))
		return errors.NewPersistenceError("create output directory", filepath.Dir(s.jsonPath), err)
	}

	if err := s.saveJSON(collection); err != nil {
		s.logger.Error("Failed to save JSON", zap.Error(err))
		return err
	}

	if err := s.saveCSV(collection); err != nil {
		s.logger.Error("Failed to save CSV", zap.Error(err))
		return err
	}

	s.logger.Info("Collection saved",
		zap.Int("speakers", collection.Len()),
		zap.String("json", s.jsonPath),
		zap.String("csv", s.csvPath))
	return nil
}

func (s *Store) saveJSON(collection *domain.SpeakerCollection) error {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(collection.Speakers); err != nil {
		return errors.NewPersistenceError("encode JSON", s.jsonPath, err)
	}

	if err := os.WriteFile(s.jsonPath, buf.Bytes(), 0644); err != nil {
		return errors.NewPersistenceError("write JSON", s.jsonPath, err)
	}
	return nil
}

func (s *Store) saveCSV(collection *domain.SpeakerCollection) error {
	file, err := os.Create(s.csvPath)
	if err != nil {
		return errors.NewPersistenceError("create CSV", s.csvPath, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(domain.FieldNames()); err != nil {
		return errors.NewPersistenceError("write CSV header", s.csvPath, err)
	}

	for _, speaker := range collection.Speakers {
		if err := writer.Write(speaker.Values()); err != nil {
			return errors.NewPersistenceError("write CSV row", s.csvPath, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.NewPersistenceError("flush CSV", s.csvPath, err)
	}
	return nil
}

// LoadJSON reads a previously persisted collection. A missing file yields an
// empty collection, not an error; absent keys in a record fall back to their
// sentinels.
func (s *Store) LoadJSON() (*domain.SpeakerCollection, error) {
	data, err := os.ReadFile(s.jsonPath)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Warn("No persisted data found", zap.String("path", s.jsonPath))
			return domain.NewSpeakerCollection(), nil
		}
		return nil, errors.NewPersistenceError("read JSON", s.jsonPath, err)
	}

	var rawRecords []json.RawMessage
	if err := json.Unmarshal(data, &rawRecords); err != nil {
		return nil, errors.NewPersistenceError("decode JSON", s.jsonPath, err)
	}

	collection := domain.NewSpeakerCollection()
	for _, raw := range rawRecords {
		speaker := domain.NewSpeaker("")
		if err := json.Unmarshal(raw, speaker); err != nil {
			return nil, errors.NewPersistenceError("decode record", s.jsonPath, err)
		}
		collection.Add(speaker)
	}

	s.logger.Info("Collection loaded",
		zap.Int("speakers", collection.Len()),
		zap.String("path", s.jsonPath))
	return collection, nil
}
