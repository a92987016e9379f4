package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Acueducto-api/internal/application/auth"
	"github.com/jhoicas/Acueducto-api/internal/application/dto"
	"github.com/jhoicas/Acueducto-api/internal/domain"
	"github.com/jhoicas/Acueducto-api/internal/domain/entity"
)

type memUserRepo struct {
	users []*entity.User
}

func (m *memUserRepo) Create(u *entity.User) error {
	m.users = append(m.users, u)
	return nil
}

func (m *memUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) FindByUsername(username string) (*entity.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func newAuthUC(repo *memUserRepo) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 60,
		Issuer:     "acueducto-api-test",
	})
}

func TestRegister_HasheaPasswordYAsignaRolPorDefecto(t *testing.T) {
	repo := &memUserRepo{}
	uc := newAuthUC(repo)

	user, err := uc.RegisterUser(dto.RegisterRequest{
		Username: "cajero1",
		Password: "secreto-largo",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.RoleCashier, user.Role, "rol por defecto: cashier")
	assert.Equal(t, "cajero1", user.Name, "name por defecto: username")
	require.Len(t, repo.users, 1)
	assert.NotEqual(t, "secreto-largo", repo.users[0].PasswordHash,
		"el password nunca se persiste en claro")
}

func TestRegister_UsernameDuplicado(t *testing.T) {
	uc := newAuthUC(&memUserRepo{})

	_, err := uc.RegisterUser(dto.RegisterRequest{Username: "cajero1", Password: "secreto-largo"})
	require.NoError(t, err)

	_, err = uc.RegisterUser(dto.RegisterRequest{Username: "cajero1", Password: "otro-secreto"})
	assert.ErrorIs(t, err, domain.ErrUsernameAlreadyExists)
}

func TestRegister_RolInvalido(t *testing.T) {
	uc := newAuthUC(&memUserRepo{})
	_, err := uc.RegisterUser(dto.RegisterRequest{
		Username: "cajero1", Password: "secreto-largo", Role: "superuser",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_CredencialesCorrectas(t *testing.T) {
	uc := newAuthUC(&memUserRepo{})
	_, err := uc.RegisterUser(dto.RegisterRequest{
		Username: "admin1", Password: "secreto-largo", Role: entity.RoleAdmin,
	})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Username: "admin1", Password: "secreto-largo"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "admin1", out.Username)
	assert.Equal(t, entity.RoleAdmin, out.Role)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc := newAuthUC(&memUserRepo{})
	_, err := uc.RegisterUser(dto.RegisterRequest{Username: "cajero1", Password: "secreto-largo"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Username: "cajero1", Password: "equivocado"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := newAuthUC(&memUserRepo{})
	_, err := uc.Login(dto.LoginRequest{Username: "nadie", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
