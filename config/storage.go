package config

import (
	"abc-retail/libs"

	"go.uber.org/zap"
)

// NewBlobStore returns nil when cloudinary is not configured.
func NewBlobStore(cfg *Config) libs.BlobStore {
	cldConfig := libs.CloudinaryConfig{
		URL:       cfg.CloudinaryURL,
		CloudName: cfg.CloudinaryCloudName,
		APIKey:    cfg.CloudinaryAPIKey,
		APISecret: cfg.CloudinaryAPISecret,
	}
	if !cldConfig.Enabled() {
		zap.S().Warn("Cloudinary not configured, blob uploads are disabled")
		return nil
	}

	store, err := libs.NewCloudinaryBlobStore(cldConfig)
	if err != nil {
		zap.S().Errorf("Cloudinary init failed: %v", err)
		return nil
	}
	return store
}

// NewFileShare prefers SFTP and falls back to a local directory tree.
func NewFileShare(cfg *Config) libs.FileShare {
	if cfg.SFTPAddr != "" {
		share, err := libs.NewSFTPFileShare(libs.SFTPConfig{
			Addr:     cfg.SFTPAddr,
			User:     cfg.SFTPUser,
			Password: cfg.SFTPPassword,
			HostKey:  cfg.SFTPHostKey,
			Root:     cfg.SFTPRoot,
		})
		if err == nil {
			zap.S().Infof("File share connected over sftp: %s", cfg.SFTPAddr)
			return share
		}
		zap.S().Errorf("SFTP connection failed, using local file share: %v", err)
	}

	zap.S().Infof("File share rooted at %s", cfg.FileShareRoot)
	return libs.NewLocalFileShare(cfg.FileShareRoot)
}

// NewEmailService returns nil when SMTP is not configured.
func NewEmailService(cfg *Config) *libs.EmailService {
	smtp := libs.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		User:     cfg.SMTPUser,
		Password: cfg.SMTPPass,
		From:     cfg.SMTPFrom,
	}
	if !smtp.Enabled() {
		zap.S().Warn("SMTP not configured, order confirmation emails are disabled")
		return nil
	}

	svc, err := libs.NewEmailService(smtp)
	if err != nil {
		zap.S().Errorf("email service init failed: %v", err)
		return nil
	}
	return svc
}
