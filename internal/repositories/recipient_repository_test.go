package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"bukutamu/internal/models/db_models"
)

type RecipientRepositorySuite struct {
	suite.Suite
	repo RecipientRepository
	ctx  context.Context
}

func TestRecipientRepositorySuite(t *testing.T) {
	suite.Run(t, new(RecipientRepositorySuite))
}

func (s *RecipientRepositorySuite) SetupTest() {
	s.repo = NewRecipientRepository(openTestDB(s.T()))
	s.ctx = context.Background()
}

func (s *RecipientRepositorySuite) seed(name, position string) *db_models.Recipient {
	recipient := &db_models.Recipient{Name: name, Position: position, IsActive: true}
	s.Require().NoError(s.repo.Insert(s.ctx, recipient))
	return recipient
}

func (s *RecipientRepositorySuite) TestListActiveSortedByName() {
	s.seed("pak-budi", "Kepala Divisi")
	s.seed("ibu-siti", "HRD")
	s.seed("resepsionis", "Resepsionis")

	recipients, err := s.repo.ListActive(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(recipients, 3)
	s.Equal("ibu-siti", recipients[0].Name)
	s.Equal("pak-budi", recipients[1].Name)
	s.Equal("resepsionis", recipients[2].Name)
}

func (s *RecipientRepositorySuite) TestDeactivateKeepsRow() {
	recipient := s.seed("pak-budi", "Kepala Divisi")

	s.Require().NoError(s.repo.Deactivate(s.ctx, recipient.ID.String()))

	active, err := s.repo.ListActive(s.ctx)
	s.Require().NoError(err)
	s.Empty(active)

	// Soft delete only: the row is still retrievable by id.
	stored, err := s.repo.FindByID(s.ctx, recipient.ID.String())
	s.Require().NoError(err)
	s.Require().NotNil(stored)
	s.False(stored.IsActive)
}

func (s *RecipientRepositorySuite) TestFindActiveByNameSkipsInactive() {
	recipient := s.seed("ibu-siti", "HRD")

	found, err := s.repo.FindActiveByName(s.ctx, "ibu-siti")
	s.Require().NoError(err)
	s.Require().NotNil(found)
	s.Equal(recipient.ID, found.ID)

	s.Require().NoError(s.repo.Deactivate(s.ctx, recipient.ID.String()))

	found, err = s.repo.FindActiveByName(s.ctx, "ibu-siti")
	s.Require().NoError(err)
	s.Nil(found)
}

func (s *RecipientRepositorySuite) TestUpdateReplacesAllFields() {
	recipient := s.seed("pak-budi", "Kepala Divisi")

	recipient.Name = "pak-budi-santoso"
	recipient.Position = "Direktur"
	recipient.Whatsapp = "6281234567899"
	recipient.IsActive = false
	s.Require().NoError(s.repo.Update(s.ctx, recipient))

	stored, err := s.repo.FindByID(s.ctx, recipient.ID.String())
	s.Require().NoError(err)
	s.Equal("pak-budi-santoso", stored.Name)
	s.Equal("Direktur", stored.Position)
	s.Equal("6281234567899", stored.Whatsapp)
	s.False(stored.IsActive)
}

func (s *RecipientRepositorySuite) TestUpdateUnknownID() {
	ghost := &db_models.Recipient{Name: "ghost", Position: "none"}
	ghost.ID = uuid.New()
	err := s.repo.Update(s.ctx, ghost)
	s.Error(err)
}
