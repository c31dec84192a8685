//go:build integration
// +build integration

package repository

import (
	"testing"

	"orghub-backend/internal/database/models"
	"orghub-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// MembershipRepositoryTestSuite tests the MembershipRepository
type MembershipRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *MembershipRepository
	userRepo      *UserRepository
	orgRepo       *OrganizationRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *MembershipRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewMembershipRepository(suite.baseTestSuite.DB)
	suite.userRepo = NewUserRepository(suite.baseTestSuite.DB)
	suite.orgRepo = NewOrganizationRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *MembershipRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *MembershipRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *MembershipRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// seed creates a user plus an organization owned by a separate user
func (suite *MembershipRepositoryTestSuite) seed() (*models.User, *models.Organization) {
	owner := suite.factories.User.Create()
	suite.Require().NoError(suite.userRepo.Create(owner))

	user := suite.factories.User.Create()
	suite.Require().NoError(suite.userRepo.Create(user))

	org := suite.factories.Organization.Create()
	suite.Require().NoError(suite.orgRepo.CreateWithOwner(org, owner.ID))

	return user, org
}

func (suite *MembershipRepositoryTestSuite) TestCreateAndGetByUserAndOrganization() {
	user, org := suite.seed()

	membership := suite.factories.Membership.WithRole(user.ID, org.ID, models.RoleAdmin)
	suite.Require().NoError(suite.repo.Create(membership))

	found, err := suite.repo.GetByUserAndOrganization(user.ID, org.ID)
	suite.Require().NoError(err)
	suite.Equal(models.RoleAdmin, found.Role)
}

func (suite *MembershipRepositoryTestSuite) TestDuplicatePairTranslatesToDuplicatedKey() {
	user, org := suite.seed()

	first := suite.factories.Membership.Create(user.ID, org.ID)
	suite.Require().NoError(suite.repo.Create(first))

	second := suite.factories.Membership.WithRole(user.ID, org.ID, models.RoleAdmin)
	err := suite.repo.Create(second)

	suite.ErrorIs(err, gorm.ErrDuplicatedKey)
}

func (suite *MembershipRepositoryTestSuite) TestSameUserInTwoOrganizations() {
	user, org := suite.seed()

	other := suite.factories.Organization.Create()
	suite.Require().NoError(suite.orgRepo.CreateWithOwner(other, user.ID))

	membership := suite.factories.Membership.Create(user.ID, org.ID)
	suite.Require().NoError(suite.repo.Create(membership))

	memberships, err := suite.repo.GetByUser(user.ID)
	suite.Require().NoError(err)
	suite.Len(memberships, 2)
	for _, m := range memberships {
		suite.Require().NotNil(m.Organization)
	}
}

func (suite *MembershipRepositoryTestSuite) TestGetByIDInOrganizationScoping() {
	user, org := suite.seed()

	membership := suite.factories.Membership.Create(user.ID, org.ID)
	suite.Require().NoError(suite.repo.Create(membership))

	found, err := suite.repo.GetByIDInOrganization(membership.ID, org.ID)
	suite.Require().NoError(err)
	suite.Equal(membership.ID, found.ID)
	suite.Require().NotNil(found.User)
	suite.Equal(user.Email, found.User.Email)

	// The same membership ID under another organization reads as absent.
	_, err = suite.repo.GetByIDInOrganization(membership.ID, uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *MembershipRepositoryTestSuite) TestGetByOrganization() {
	user, org := suite.seed()

	membership := suite.factories.Membership.Create(user.ID, org.ID)
	suite.Require().NoError(suite.repo.Create(membership))

	memberships, err := suite.repo.GetByOrganization(org.ID)
	suite.Require().NoError(err)
	// The owner membership from CreateWithOwner plus the new member.
	suite.Len(memberships, 2)
	for _, m := range memberships {
		suite.Require().NotNil(m.User)
	}
}

func (suite *MembershipRepositoryTestSuite) TestUpdateRole() {
	user, org := suite.seed()

	membership := suite.factories.Membership.Create(user.ID, org.ID)
	suite.Require().NoError(suite.repo.Create(membership))

	membership.Role = models.RoleOwner
	suite.Require().NoError(suite.repo.Update(membership))

	found, err := suite.repo.GetByID(membership.ID)
	suite.Require().NoError(err)
	suite.Equal(models.RoleOwner, found.Role)
}

func (suite *MembershipRepositoryTestSuite) TestDelete() {
	user, org := suite.seed()

	membership := suite.factories.Membership.Create(user.ID, org.ID)
	suite.Require().NoError(suite.repo.Create(membership))

	suite.Require().NoError(suite.repo.Delete(membership.ID))

	_, err := suite.repo.GetByID(membership.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	// The user record itself is untouched.
	_, err = suite.userRepo.GetByID(user.ID)
	suite.NoError(err)
}

// TestMembershipRepositoryTestSuite runs the test suite
func TestMembershipRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(MembershipRepositoryTestSuite))
}
