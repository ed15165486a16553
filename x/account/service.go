//go:generate go run go.uber.org/mock/mockgen -source=service.go -destination=mock/service.go
package account

import (
	"context"
	"log/slog"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/rs/xid"
	"go.opentelemetry.io/otel"

	"github.com/soheekimdev/backend-server-effect-sub000/core"
	"github.com/soheekimdev/backend-server-effect-sub000/x/jwt"
	"github.com/soheekimdev/backend-server-effect-sub000/x/policy"
	"github.com/soheekimdev/backend-server-effect-sub000/x/util"
)

var tracer = otel.Tracer("account")

// Service is the interface for account service
type Service interface {
	SignUp(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Create], input SignUpInput) (core.Account, error)
	SignIn(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Read], email, password string) (SignInResult, error)
	Me(ctx context.Context) (core.Account, error)
	Get(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Read], id string) (core.Account, error)
	List(ctx context.Context, page core.Pagination) (core.Page[core.Account], error)
	Update(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Update], id string, input UpdateInput) (core.Account, error)
	Delete(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Delete], id string) error
	Count(ctx context.Context) (int64, error)
}

type service struct {
	repository Repository
	config     core.Config
}

// NewService creates a new account service
func NewService(repository Repository, config core.Config) Service {
	return &service{repository, config}
}

// SignUp registers a new account
func (s *service) SignUp(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Create], input SignUpInput) (core.Account, error) {
	ctx, span := tracer.Start(ctx, "Account.Service.SignUp")
	defer span.End()

	if err := actor.Verify(); err != nil {
		return core.Account{}, err
	}

	if s.config.Registration == "closed" {
		return core.Account{}, core.NewErrorUnauthorized(actor.ID(), actor.Entity(), actor.Action(), "registration is closed")
	}

	email := util.NormalizeEmail(input.Email)

	_, err := s.repository.GetByEmail(ctx, email)
	if err == nil {
		return core.Account{}, core.NewErrorAlreadyExists("account")
	}
	if !errors.As(err, &core.ErrorNotFound{}) {
		span.RecordError(err)
		return core.Account{}, err
	}

	hash, err := util.HashPassword(input.Password)
	if err != nil {
		span.RecordError(err)
		return core.Account{}, err
	}

	role := core.RoleUser
	if util.ContainsFold(s.config.Admins, email) {
		role = core.RoleAdmin
	}

	username := input.Username
	if username == "" {
		username = email
	}

	created, err := s.repository.Create(ctx, core.Account{
		ID:           xid.New().String(),
		Email:        email,
		PasswordHash: hash,
		Username:     username,
		Role:         role,
	})
	if err != nil {
		span.RecordError(err)
		return core.Account{}, err
	}

	slog.InfoContext(
		ctx, "account registered",
		slog.String("module", "account"),
		slog.String("account", created.ID),
		slog.String("role", created.Role),
	)

	return created, nil
}

// SignIn checks credentials and issues an access token
func (s *service) SignIn(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Read], email, password string) (SignInResult, error) {
	ctx, span := tracer.Start(ctx, "Account.Service.SignIn")
	defer span.End()

	if err := actor.Verify(); err != nil {
		return SignInResult{}, err
	}

	invalid := core.NewErrorUnauthenticated("invalid email or password")

	account, err := s.repository.GetByEmail(ctx, util.NormalizeEmail(email))
	if err != nil {
		if errors.As(err, &core.ErrorNotFound{}) {
			return SignInResult{}, invalid
		}
		span.RecordError(err)
		return SignInResult{}, err
	}

	if !util.CheckPassword(account.PasswordHash, password) {
		return SignInResult{}, invalid
	}

	now := time.Now()
	token, err := jwt.Create(jwt.Claims{
		Email: account.Email,
		Role:  account.Role,
		RegisteredClaims: gojwt.RegisteredClaims{
			ID:        xid.New().String(),
			Issuer:    account.ID,
			Subject:   jwt.SubjectAccess,
			Audience:  gojwt.ClaimStrings{s.config.FQDN},
			IssuedAt:  gojwt.NewNumericDate(now),
			ExpiresAt: gojwt.NewNumericDate(now.Add(s.config.TokenTTL)),
		},
	}, s.config.JWTSecret)
	if err != nil {
		span.RecordError(err)
		return SignInResult{}, errors.Wrap(err, "failed to issue access token")
	}

	return SignInResult{Account: account, AccessToken: token}, nil
}

// Me returns the account of the current actor
func (s *service) Me(ctx context.Context) (core.Account, error) {
	ctx, span := tracer.Start(ctx, "Account.Service.Me")
	defer span.End()

	actor, err := core.CurrentActor(ctx)
	if err != nil {
		return core.Account{}, err
	}

	return s.repository.Get(ctx, actor.ID)
}

// Get returns an account by id
func (s *service) Get(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Read], id string) (core.Account, error) {
	ctx, span := tracer.Start(ctx, "Account.Service.Get")
	defer span.End()

	if err := actor.Verify(); err != nil {
		return core.Account{}, err
	}

	return s.repository.Get(ctx, id)
}

// List returns public accounts. Admins see private accounts too.
func (s *service) List(ctx context.Context, page core.Pagination) (core.Page[core.Account], error) {
	ctx, span := tracer.Start(ctx, "Account.Service.List")
	defer span.End()

	requester, _ := core.ActorFromContext(ctx)

	accounts, total, err := s.repository.List(ctx, requester.IsAdmin(), page)
	if err != nil {
		span.RecordError(err)
		return core.Page[core.Account]{}, err
	}

	return core.NewPage(accounts, total, page), nil
}

// Update applies a partial update to an account
func (s *service) Update(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Update], id string, input UpdateInput) (core.Account, error) {
	ctx, span := tracer.Start(ctx, "Account.Service.Update")
	defer span.End()

	if err := actor.Verify(); err != nil {
		return core.Account{}, err
	}

	if input.Role != nil && !actor.Actor().IsAdmin() {
		return core.Account{}, core.NewErrorUnauthorized(actor.ID(), actor.Entity(), actor.Action(), "only an admin can change roles")
	}

	account, err := s.repository.Get(ctx, id)
	if err != nil {
		return core.Account{}, err
	}

	if input.Username != nil {
		account.Username = *input.Username
	}
	if input.Bio != nil {
		account.Bio = *input.Bio
	}
	if input.ProfileImageURL != nil {
		account.ProfileImageURL = *input.ProfileImageURL
	}
	if input.ExternalURLs != nil {
		account.ExternalURLs = input.ExternalURLs
	}
	if input.IsPrivate != nil {
		account.IsPrivate = *input.IsPrivate
	}
	if input.Role != nil {
		account.Role = *input.Role
	}
	if input.Password != nil {
		hash, err := util.HashPassword(*input.Password)
		if err != nil {
			span.RecordError(err)
			return core.Account{}, err
		}
		account.PasswordHash = hash
	}

	updated, err := s.repository.Update(ctx, account)
	if err != nil {
		span.RecordError(err)
		return core.Account{}, err
	}

	return updated, nil
}

// Delete soft-deletes an account
func (s *service) Delete(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Delete], id string) error {
	ctx, span := tracer.Start(ctx, "Account.Service.Delete")
	defer span.End()

	if err := actor.Verify(); err != nil {
		return err
	}

	err := s.repository.Delete(ctx, id)
	if err != nil {
		span.RecordError(err)
		return err
	}

	slog.InfoContext(
		ctx, "account deleted",
		slog.String("module", "account"),
		slog.String("account", id),
		slog.String("by", actor.ID()),
	)

	return nil
}

// Count returns the number of active accounts
func (s *service) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Account.Service.Count")
	defer span.End()

	return s.repository.Count(ctx)
}
