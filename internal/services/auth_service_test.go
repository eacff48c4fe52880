package services

import (
	"strings"

	"github.com/yukikurage/contest-tracker/internal/models"
	"golang.org/x/crypto/bcrypt"
)

func (suite *ServiceTestSuite) register(name, email, password string) *models.User {
	user, err := suite.auth.Register(suite.ctx(), RegisterInput{Name: name, Email: email, Password: password})
	suite.Require().NoError(err)
	return user
}

func (suite *ServiceTestSuite) TestRegister_HashesPasswordAndNormalizesEmail() {
	user := suite.register(" Alice ", " Alice@Example.com ", "secret1")

	suite.Equal("Alice", user.Name)
	suite.Equal("alice@example.com", user.Email)
	suite.NotEqual("secret1", user.PasswordHash)
	suite.NoError(bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret1")))
}

func (suite *ServiceTestSuite) TestRegister_Validation() {
	tests := []struct {
		name  string
		input RegisterInput
	}{
		{"missing name", RegisterInput{Email: "a@example.com", Password: "secret1"}},
		{"missing email", RegisterInput{Name: "A", Password: "secret1"}},
		{"bad email", RegisterInput{Name: "A", Email: "not-an-email", Password: "secret1"}},
		{"short password", RegisterInput{Name: "A", Email: "a@example.com", Password: "12345"}},
		{"password over bcrypt limit", RegisterInput{Name: "A", Email: "a@example.com", Password: strings.Repeat("a", 80)}},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := suite.auth.Register(suite.ctx(), tt.input)
			suite.ErrorIs(err, ErrInvalidInput)
		})
	}
}

func (suite *ServiceTestSuite) TestRegister_DuplicateEmail() {
	suite.register("A", "a@example.com", "secret1")

	_, err := suite.auth.Register(suite.ctx(), RegisterInput{Name: "B", Email: "A@example.com", Password: "secret2"})
	suite.ErrorIs(err, ErrConflict)
	suite.ErrorIs(err, ErrEmailTaken)
}

func (suite *ServiceTestSuite) TestLogin_IssuesVerifiableToken() {
	user := suite.register("Alice", "alice@example.com", "secret1")

	result, err := suite.auth.Login(suite.ctx(), LoginInput{Email: "alice@example.com", Password: "secret1"})
	suite.Require().NoError(err)
	suite.Equal(user.ID, result.User.ID)

	claims, err := suite.tokens.Parse(result.Token)
	suite.Require().NoError(err)
	id, err := claims.NumericUserID()
	suite.Require().NoError(err)
	suite.Equal(user.ID, id)
	suite.Equal("Alice", claims.Name)
	suite.Equal("alice@example.com", claims.Email)
}

func (suite *ServiceTestSuite) TestLogin_RejectsBadCredentials() {
	suite.register("Alice", "alice@example.com", "secret1")

	_, err := suite.auth.Login(suite.ctx(), LoginInput{Email: "alice@example.com", Password: "wrong-password"})
	suite.ErrorIs(err, ErrUnauthorized)

	_, err = suite.auth.Login(suite.ctx(), LoginInput{Email: "nobody@example.com", Password: "secret1"})
	suite.ErrorIs(err, ErrUnauthorized)
}

func (suite *ServiceTestSuite) TestUpdateProfile() {
	user := suite.register("Alice", "alice@example.com", "secret1")

	updated, err := suite.auth.UpdateProfile(suite.ctx(), user.ID, UpdateProfileInput{Name: "Alice Smith"})
	suite.Require().NoError(err)
	suite.Equal("Alice Smith", updated.Name)

	_, err = suite.auth.UpdateProfile(suite.ctx(), user.ID, UpdateProfileInput{
		Name:            "Alice Smith",
		CurrentPassword: "wrong-one",
		NewPassword:     "newsecret",
	})
	suite.ErrorIs(err, ErrInvalidInput)
	suite.ErrorIs(err, ErrIncorrectPassword)

	_, err = suite.auth.UpdateProfile(suite.ctx(), user.ID, UpdateProfileInput{
		Name:            "Alice Smith",
		CurrentPassword: "secret1",
		NewPassword:     "newsecret",
	})
	suite.Require().NoError(err)

	_, err = suite.auth.Login(suite.ctx(), LoginInput{Email: "alice@example.com", Password: "secret1"})
	suite.ErrorIs(err, ErrUnauthorized)
	_, err = suite.auth.Login(suite.ctx(), LoginInput{Email: "alice@example.com", Password: "newsecret"})
	suite.NoError(err)

	_, err = suite.auth.UpdateProfile(suite.ctx(), user.ID, UpdateProfileInput{
		Name:            "Alice Smith",
		CurrentPassword: "newsecret",
		NewPassword:     strings.Repeat("b", 73),
	})
	suite.ErrorIs(err, ErrPasswordTooLong)
	suite.ErrorIs(err, ErrInvalidInput)

	_, err = suite.auth.UpdateProfile(suite.ctx(), user.ID, UpdateProfileInput{Name: "  "})
	suite.ErrorIs(err, ErrInvalidInput)

	_, err = suite.auth.UpdateProfile(suite.ctx(), 0, UpdateProfileInput{Name: "X"})
	suite.ErrorIs(err, ErrUnauthorized)
}
