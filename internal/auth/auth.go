// Package auth stores the restaurant manager's credentials in the
// tab-separated credential file. The ordering core never reads this
// file; only the sign-up and login flows do.
package auth

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// CredentialsFileName holds one username<TAB>secret record per line.
// The secret column is a bcrypt hash.
const CredentialsFileName = "login_credentials.txt"

// MinPasswordLen is the shortest password sign-up accepts.
const MinPasswordLen = 6

// Errors returned by the credential store.
var (
	ErrNoCredentials    = errors.New("no login credentials found")
	ErrUsernameTaken    = errors.New("username already exists")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
)

// CredentialStore reads and appends manager credentials.
type CredentialStore struct {
	path string
}

// NewCredentialStore creates a store over the credential file in dir.
func NewCredentialStore(dir string) *CredentialStore {
	return &CredentialStore{path: filepath.Join(dir, CredentialsFileName)}
}

// Register appends a new username with the bcrypt hash of password.
// Usernames are unique; passwords must be at least MinPasswordLen
// characters.
func (s *CredentialStore) Register(username, password string) error {
	if len(password) < MinPasswordLen {
		return ErrPasswordTooShort
	}

	records, err := s.readRecords()
	if err != nil && !errors.Is(err, ErrNoCredentials) {
		return err
	}
	for _, r := range records {
		if r.username == username {
			return ErrUsernameTaken
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open credentials: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "%s\t%s\n", username, hashed); err != nil {
		return fmt.Errorf("append credentials: %w", err)
	}
	return nil
}

// Verify reports whether the username and password match a stored
// record. A missing or empty credential file is ErrNoCredentials; the
// caller redirects to sign-up.
func (s *CredentialStore) Verify(username, password string) (bool, error) {
	records, err := s.readRecords()
	if err != nil {
		return false, err
	}
	for _, r := range records {
		if r.username != username {
			continue
		}
		return bcrypt.CompareHashAndPassword([]byte(r.secret), []byte(password)) == nil, nil
	}
	return false, nil
}

type record struct {
	username string
	secret   string
}

func (s *CredentialStore) readRecords() ([]record, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoCredentials
		}
		return nil, fmt.Errorf("open credentials: %w", err)
	}
	defer f.Close()

	var records []record
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.SplitN(line, "\t", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("malformed credential record %q", line)
		}
		records = append(records, record{username: parts[0], secret: parts[1]})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read credentials: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrNoCredentials
	}
	return records, nil
}
