package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/intertech/sales-automation-api/internal/application/dto"
	"github.com/intertech/sales-automation-api/internal/domain"
	"github.com/intertech/sales-automation-api/internal/domain/entity"
)

func TestBulkCreateUsers(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := newAuthUC(repo, &fakeMailer{})

	rows, err := uc.BulkCreateUsers(context.Background(), dto.BulkCreateRequest{
		Names: []string{"Jane Doe", "José Álvarez"},
	})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "janedoe@intertech.com", rows[0].Email)
	assert.Equal(t, "josealvarez@intertech.com", rows[1].Email, "diacritics fold to base letters")
	assert.Equal(t, entity.RoleAgent, rows[0].Role)

	require.Len(t, repo.users, 2)
	for i, row := range rows {
		assert.Len(t, row.Password, 12)
		assert.NoError(t, bcrypt.CompareHashAndPassword(
			[]byte(repo.users[i].PasswordHash), []byte(row.Password)),
			"stored hash must match the returned plaintext")
		assert.True(t, repo.users[i].IsActive)
	}
	assert.NotEqual(t, rows[0].Password, rows[1].Password)
}

func TestBulkCreateUsers_SkipsExistingEmails(t *testing.T) {
	repo := &fakeUserRepo{}
	seedUser(repo, "u-1", "janedoe@intertech.com", entity.RoleAgent, "x", true)
	uc := newAuthUC(repo, &fakeMailer{})

	rows, err := uc.BulkCreateUsers(context.Background(), dto.BulkCreateRequest{
		Names: []string{"Jane Doe", "New Agent"},
	})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Already Exists", rows[0].Password)
	assert.NotEqual(t, "Already Exists", rows[1].Password)
	assert.Len(t, repo.users, 2, "existing account is left untouched")
}

func TestBulkCreateUsers_QAAgentRole(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := newAuthUC(repo, &fakeMailer{})

	rows, err := uc.BulkCreateUsers(context.Background(), dto.BulkCreateRequest{
		Names: []string{"QA One"},
		Role:  entity.RoleQAAgent,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleQAAgent, rows[0].Role)
	assert.Equal(t, entity.RoleQAAgent, repo.users[0].Role)
}

func TestBulkCreateUsers_Rejections(t *testing.T) {
	uc := newAuthUC(&fakeUserRepo{}, &fakeMailer{})

	var badReq *domain.BadRequestError
	_, err := uc.BulkCreateUsers(context.Background(), dto.BulkCreateRequest{})
	require.ErrorAs(t, err, &badReq)
	assert.Equal(t, "Please provide a list of names", badReq.Msg)

	_, err = uc.BulkCreateUsers(context.Background(), dto.BulkCreateRequest{
		Names: []string{"Eve"},
		Role:  entity.RoleSuperadmin,
	})
	require.ErrorAs(t, err, &badReq)
	assert.Equal(t, "Invalid role provided", badReq.Msg)
}

func TestBulkCreateUsers_SkipsBlankNames(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := newAuthUC(repo, &fakeMailer{})

	rows, err := uc.BulkCreateUsers(context.Background(), dto.BulkCreateRequest{
		Names: []string{"  ", "Jane Doe"},
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Jane Doe", rows[0].Name)
}
