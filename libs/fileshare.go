package libs

import (
	"context"
	"io"
	"net"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/pkg/sftp"
	"go.uber.org/zap"
	"golang.org/x/crypto/ssh"
)

var (
	ErrFileNotFound    = errors.New("file not found")
	ErrInvalidFileName = errors.New("invalid file name")
)

type FileInfo struct {
	Name string
	Size int64
}

// FileShare is a hierarchical file store addressed by share, directory and file name.
// An empty directory means the share root.
type FileShare interface {
	Write(ctx context.Context, share, dir, name string, content io.Reader) error
	Append(ctx context.Context, share, dir, name string, data []byte) error
	Read(ctx context.Context, share, dir, name string) ([]byte, error)
	List(ctx context.Context, share, dir string) ([]FileInfo, error)
	Delete(ctx context.Context, share, dir, name string) error
}

// CleanFileName rejects names that would escape their directory.
func CleanFileName(name string) (string, error) {
	if name == "" || name == "." || name == ".." ||
		strings.ContainsAny(name, `/\`) || filepath.Base(name) != name {
		return "", errors.Wrapf(ErrInvalidFileName, "%q", name)
	}
	return name, nil
}

func sharePath(join func(...string) string, root, share, dir, name string) (string, error) {
	for _, part := range []string{share, dir} {
		if part == "" {
			continue
		}
		if _, err := CleanFileName(part); err != nil {
			return "", err
		}
	}
	if name != "" {
		if _, err := CleanFileName(name); err != nil {
			return "", err
		}
	}
	return join(root, share, dir, name), nil
}

func sortFiles(files []FileInfo) []FileInfo {
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files
}

// LocalFileShare keeps shares as directories below Root.
type LocalFileShare struct {
	Root string
}

func NewLocalFileShare(root string) *LocalFileShare {
	return &LocalFileShare{Root: root}
}

func (s *LocalFileShare) Write(ctx context.Context, share, dir, name string, content io.Reader) error {
	target, err := sharePath(filepath.Join, s.Root, share, dir, name)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(target), os.ModePerm); err != nil {
		return errors.Wrap(err, "create share directory")
	}

	f, err := os.Create(target)
	if err != nil {
		return errors.Wrapf(err, "create %s", name)
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		return errors.Wrapf(err, "write %s", name)
	}
	return nil
}

func (s *LocalFileShare) Append(ctx context.Context, share, dir, name string, data []byte) error {
	target, err := sharePath(filepath.Join, s.Root, share, dir, name)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(target), os.ModePerm); err != nil {
		return errors.Wrap(err, "create share directory")
	}

	f, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return errors.Wrapf(err, "open %s", name)
	}
	defer f.Close()

	_, err = f.Write(data)
	return errors.Wrapf(err, "append %s", name)
}

func (s *LocalFileShare) Read(ctx context.Context, share, dir, name string) ([]byte, error) {
	target, err := sharePath(filepath.Join, s.Root, share, dir, name)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(target)
	if errors.Is(err, os.ErrNotExist) {
		return nil, errors.Wrapf(ErrFileNotFound, "%s", name)
	}
	return data, errors.Wrapf(err, "read %s", name)
}

func (s *LocalFileShare) List(ctx context.Context, share, dir string) ([]FileInfo, error) {
	target, err := sharePath(filepath.Join, s.Root, share, dir, "")
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(target)
	if errors.Is(err, os.ErrNotExist) {
		return []FileInfo{}, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "list %s", target)
	}

	files := []FileInfo{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, FileInfo{Name: entry.Name(), Size: info.Size()})
	}
	return sortFiles(files), nil
}

func (s *LocalFileShare) Delete(ctx context.Context, share, dir, name string) error {
	target, err := sharePath(filepath.Join, s.Root, share, dir, name)
	if err != nil {
		return err
	}

	err = os.Remove(target)
	if errors.Is(err, os.ErrNotExist) {
		return errors.Wrapf(ErrFileNotFound, "%s", name)
	}
	return errors.Wrapf(err, "delete %s", name)
}

type SFTPConfig struct {
	Addr     string
	User     string
	Password string
	HostKey  string
	Root     string
}

// SFTPFileShare keeps shares as directories below Root on a remote SFTP server.
type SFTPFileShare struct {
	conn   *ssh.Client
	client *sftp.Client
	root   string
}

func NewSFTPFileShare(cfg SFTPConfig) (*SFTPFileShare, error) {
	hostKeyCallback := ssh.InsecureIgnoreHostKey()
	if cfg.HostKey != "" {
		key, _, _, _, err := ssh.ParseAuthorizedKey([]byte(cfg.HostKey))
		if err != nil {
			return nil, errors.Wrap(err, "parse sftp host key")
		}
		hostKeyCallback = ssh.FixedHostKey(key)
	} else {
		zap.S().Warn("SFTP_HOST_KEY not set, sftp host key is not verified")
	}

	conn, err := ssh.Dial("tcp", sftpAddr(cfg.Addr), &ssh.ClientConfig{
		User:            cfg.User,
		Auth:            []ssh.AuthMethod{ssh.Password(cfg.Password)},
		HostKeyCallback: hostKeyCallback,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "dial sftp %s", cfg.Addr)
	}

	client, err := sftp.NewClient(conn)
	if err != nil {
		conn.Close()
		return nil, errors.Wrap(err, "start sftp session")
	}

	root := cfg.Root
	if root == "" {
		root = "."
	}
	return &SFTPFileShare{conn: conn, client: client, root: root}, nil
}

func (s *SFTPFileShare) Close() error {
	s.client.Close()
	return s.conn.Close()
}

func isNotExist(err error) bool {
	var statusErr *sftp.StatusError
	if errors.As(err, &statusErr) && statusErr.Code == uint32(sftp.ErrSSHFxNoSuchFile) {
		return true
	}
	return errors.Is(err, os.ErrNotExist)
}

func (s *SFTPFileShare) Write(ctx context.Context, share, dir, name string, content io.Reader) error {
	target, err := sharePath(path.Join, s.root, share, dir, name)
	if err != nil {
		return err
	}
	if err := s.client.MkdirAll(path.Dir(target)); err != nil {
		return errors.Wrap(err, "create share directory")
	}

	f, err := s.client.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC)
	if err != nil {
		return errors.Wrapf(err, "create %s", name)
	}
	defer f.Close()

	if _, err := f.ReadFrom(content); err != nil {
		return errors.Wrapf(err, "write %s", name)
	}
	return nil
}

func (s *SFTPFileShare) Append(ctx context.Context, share, dir, name string, data []byte) error {
	target, err := sharePath(path.Join, s.root, share, dir, name)
	if err != nil {
		return err
	}
	if err := s.client.MkdirAll(path.Dir(target)); err != nil {
		return errors.Wrap(err, "create share directory")
	}

	f, err := s.client.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_APPEND)
	if err != nil {
		return errors.Wrapf(err, "open %s", name)
	}
	defer f.Close()

	_, err = f.Write(data)
	return errors.Wrapf(err, "append %s", name)
}

func (s *SFTPFileShare) Read(ctx context.Context, share, dir, name string) ([]byte, error) {
	target, err := sharePath(path.Join, s.root, share, dir, name)
	if err != nil {
		return nil, err
	}

	f, err := s.client.Open(target)
	if err != nil {
		if isNotExist(err) {
			return nil, errors.Wrapf(ErrFileNotFound, "%s", name)
		}
		return nil, errors.Wrapf(err, "open %s", name)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	return data, errors.Wrapf(err, "read %s", name)
}

func (s *SFTPFileShare) List(ctx context.Context, share, dir string) ([]FileInfo, error) {
	target, err := sharePath(path.Join, s.root, share, dir, "")
	if err != nil {
		return nil, err
	}

	entries, err := s.client.ReadDir(target)
	if err != nil {
		if isNotExist(err) {
			return []FileInfo{}, nil
		}
		return nil, errors.Wrapf(err, "list %s", target)
	}

	files := []FileInfo{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		files = append(files, FileInfo{Name: entry.Name(), Size: entry.Size()})
	}
	return sortFiles(files), nil
}

func (s *SFTPFileShare) Delete(ctx context.Context, share, dir, name string) error {
	target, err := sharePath(path.Join, s.root, share, dir, name)
	if err != nil {
		return err
	}

	err = s.client.Remove(target)
	if err != nil && isNotExist(err) {
		return errors.Wrapf(ErrFileNotFound, "%s", name)
	}
	return errors.Wrapf(err, "delete %s", name)
}

func sftpAddr(addr string) string {
	if _, _, err := net.SplitHostPort(addr); err != nil {
		return net.JoinHostPort(addr, "22")
	}
	return addr
}
