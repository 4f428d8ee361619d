package services

import (
	"context"
	"fmt"
	"time"

	"abc-retail/libs"
	"abc-retail/models"

	"go.uber.org/zap"
)

const LogsShare = "logs"

// AuditService appends human readable events to one log file per UTC day.
type AuditService struct {
	share libs.FileShare
	now   func() time.Time
}

func NewAuditService(share libs.FileShare) *AuditService {
	return &AuditService{share: share, now: time.Now}
}

func LogFileName(t time.Time) string {
	return fmt.Sprintf("log_%s.txt", t.UTC().Format("20060102"))
}

// LogEvent never fails the caller; storage errors only reach the zap log.
func (s *AuditService) LogEvent(ctx context.Context, message string) {
	now := s.now().UTC()
	line := fmt.Sprintf("%s - %s\n", now.Format("2006-01-02 15:04:05Z"), message)

	if err := s.share.Append(ctx, LogsShare, "", LogFileName(now), []byte(line)); err != nil {
		zap.S().Errorw("failed to write audit log", "event", message, "error", err)
	}
}

func (s *AuditService) ListLogs(ctx context.Context) ([]models.StoredFile, error) {
	files, err := s.share.List(ctx, LogsShare, "")
	if err != nil {
		return nil, err
	}
	return toStoredFiles(files), nil
}

func (s *AuditService) DownloadLog(ctx context.Context, name string) ([]byte, error) {
	data, err := s.share.Read(ctx, LogsShare, "", name)
	return data, translateFileError(err)
}

func toStoredFiles(files []libs.FileInfo) []models.StoredFile {
	stored := make([]models.StoredFile, 0, len(files))
	for _, f := range files {
		stored = append(stored, models.StoredFile{Name: f.Name, Size: f.Size})
	}
	return stored
}
