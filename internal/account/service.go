package account

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/gofrs/uuid"
	"github.com/rs/zerolog/log"

	"github.com/ramenku/ramenku/internal/storage"
)

const (
	accountsKey = "ramen-registered-users"
	sessionKey  = "ramen-user"
)

// Bootstrap admin credential. A design concession for the mocked environment:
// it exists so the admin board can be exercised without a real provisioning
// flow, and it is seeded on the first access that finds an empty account
// collection. It is deliberately well known, not a security feature.
const (
	BootstrapAdminEmail  = "admin@ramenku.com"
	BootstrapAdminSecret = "admin123"
	bootstrapAdminName   = "Ramenku Admin"
)

var (
	ErrValidation         = errors.New("account: invalid registration input")
	ErrEmailExists        = errors.New("account: email already registered")
	ErrNotFound           = errors.New("account: no account with that email")
	ErrInvalidCredentials = errors.New("account: credentials do not match")
	ErrNoSession          = errors.New("account: no active session")
)

const (
	minNameLength   = 2
	minSecretLength = 6
)

type Service interface {
	Register(ctx context.Context, name, email, secret string) (*Session, error)
	Login(ctx context.Context, email, secret string) (*Session, error)
	Logout(ctx context.Context) error
	CurrentSession(ctx context.Context) (*Session, error)
	Accounts(ctx context.Context) ([]Account, error)
}

type service struct {
	store    storage.Store
	verifier Verifier
	validate *validator.Validate
}

func NewService(store storage.Store, verifier Verifier) Service {
	return &service{store: store, verifier: verifier, validate: validator.New()}
}

func (s *service) Register(ctx context.Context, name, email, secret string) (*Session, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if name == "" || email == "" || secret == "" {
		return nil, fmt.Errorf("%w: name, email and password are required", ErrValidation)
	}
	if utf8.RuneCountInString(name) < minNameLength {
		return nil, fmt.Errorf("%w: name must be at least %d characters", ErrValidation, minNameLength)
	}
	if err := s.validate.Var(email, "email"); err != nil {
		return nil, fmt.Errorf("%w: invalid email address", ErrValidation)
	}
	if len(secret) < minSecretLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", ErrValidation, minSecretLength)
	}

	hashed, err := s.verifier.Hash(secret)
	if err != nil {
		return nil, err
	}

	id, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("account: failed to generate account id: %w", err)
	}

	acc := Account{
		ID:        id,
		Name:      name,
		Email:     email,
		Secret:    hashed,
		Role:      RoleUser,
		CreatedAt: time.Now().UTC(),
	}

	err = s.store.Update(ctx, accountsKey, func(old []byte) ([]byte, error) {
		accs, err := s.decodeAccounts(old)
		if err != nil {
			return nil, err
		}
		if len(accs) == 0 {
			// First-ever access: the bootstrap admin joins before anyone else.
			admin, err := s.bootstrapAdmin()
			if err != nil {
				return nil, err
			}
			accs = append(accs, admin)
		}
		for _, existing := range accs {
			if strings.EqualFold(existing.Email, email) {
				return nil, ErrEmailExists
			}
		}
		return json.Marshal(append(accs, acc))
	})
	if err != nil {
		if errors.Is(err, ErrEmailExists) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("account: failed to persist account: %w", err)
	}

	sess := acc.Session()
	if err := s.putSession(ctx, sess); err != nil {
		return nil, err
	}

	log.Info().Stringer("account_id", acc.ID).Msg("Registered new account")
	return &sess, nil
}

func (s *service) Login(ctx context.Context, email, secret string) (*Session, error) {
	accs, err := s.Accounts(ctx)
	if err != nil {
		return nil, err
	}

	var found *Account
	for i := range accs {
		if strings.EqualFold(accs[i].Email, email) {
			found = &accs[i]
			break
		}
	}
	if found == nil {
		return nil, ErrNotFound
	}

	if err := s.verifier.Verify(found.Secret, secret); err != nil {
		log.Warn().Str("email", email).Msg("Login rejected: secret mismatch")
		return nil, ErrInvalidCredentials
	}

	sess := found.Session()
	if err := s.putSession(ctx, sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *service) Logout(ctx context.Context) error {
	if err := s.store.Delete(ctx, sessionKey); err != nil {
		return fmt.Errorf("account: failed to clear session: %w", err)
	}
	return nil
}

func (s *service) CurrentSession(ctx context.Context) (*Session, error) {
	raw, err := s.store.Get(ctx, sessionKey)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("account: failed to read session: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, fmt.Errorf("account: failed to decode session: %w", err)
	}
	return &sess, nil
}

// Accounts returns every registered account, seeding the bootstrap admin on
// the first access that finds an empty collection.
func (s *service) Accounts(ctx context.Context) ([]Account, error) {
	raw, err := s.store.Get(ctx, accountsKey)
	if err == nil {
		accs, err := s.decodeAccounts(raw)
		if err != nil {
			return nil, err
		}
		if len(accs) > 0 {
			return accs, nil
		}
	} else if !errors.Is(err, storage.ErrKeyNotFound) {
		return nil, fmt.Errorf("account: failed to read accounts: %w", err)
	}

	return s.seed(ctx)
}

func (s *service) seed(ctx context.Context) ([]Account, error) {
	var accs []Account
	seeded := false

	err := s.store.Update(ctx, accountsKey, func(old []byte) ([]byte, error) {
		existing, err := s.decodeAccounts(old)
		if err != nil {
			return nil, err
		}
		if len(existing) > 0 {
			// Another writer got here first.
			accs = existing
			return old, nil
		}

		admin, err := s.bootstrapAdmin()
		if err != nil {
			return nil, err
		}
		accs = []Account{admin}
		seeded = true
		return json.Marshal(accs)
	})
	if err != nil {
		return nil, fmt.Errorf("account: failed to seed accounts: %w", err)
	}

	if seeded {
		log.Info().Str("email", BootstrapAdminEmail).Msg("Seeded bootstrap admin account")
	}
	return accs, nil
}

func (s *service) bootstrapAdmin() (Account, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return Account{}, fmt.Errorf("account: failed to generate admin id: %w", err)
	}
	hashed, err := s.verifier.Hash(BootstrapAdminSecret)
	if err != nil {
		return Account{}, err
	}
	return Account{
		ID:        id,
		Name:      bootstrapAdminName,
		Email:     BootstrapAdminEmail,
		Secret:    hashed,
		Role:      RoleAdmin,
		CreatedAt: time.Now().UTC(),
	}, nil
}

func (s *service) putSession(ctx context.Context, sess Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("account: failed to encode session: %w", err)
	}
	if err := s.store.Put(ctx, sessionKey, raw); err != nil {
		return fmt.Errorf("account: failed to persist session: %w", err)
	}
	return nil
}

func (s *service) decodeAccounts(raw []byte) ([]Account, error) {
	if raw == nil {
		return nil, nil
	}
	var accs []Account
	if err := json.Unmarshal(raw, &accs); err != nil {
		return nil, fmt.Errorf("account: failed to decode accounts: %w", err)
	}
	return accs, nil
}
