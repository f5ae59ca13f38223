package service

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"foodieframe/internal/models"

	"github.com/stretchr/testify/require"
)

// uploadFileHeader builds a real multipart file header the way Fiber hands
// one to a handler.
func uploadFileHeader(t *testing.T, filename string) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte("file-content"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["file"][0]
}

type userRepoStub struct {
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByEmailFn    func(context.Context, string) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
	createFn        func(context.Context, *models.User) error
	updateFn        func(context.Context, *models.User) error
	deleteFn        func(context.Context, uint) error
	listFn          func(context.Context, int, int) ([]models.User, error)
	searchFn        func(context.Context, string, int) ([]models.User, error)
	recentFn        func(context.Context, int) ([]models.User, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *userRepoStub) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.listFn(ctx, limit, offset)
}
func (s *userRepoStub) Search(ctx context.Context, q string, limit int) ([]models.User, error) {
	return s.searchFn(ctx, q, limit)
}
func (s *userRepoStub) Recent(ctx context.Context, limit int) ([]models.User, error) {
	return s.recentFn(ctx, limit)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:       func(context.Context, uint) (*models.User, error) { return &models.User{}, nil },
		getByEmailFn:    func(context.Context, string) (*models.User, error) { return nil, nil },
		getByUsernameFn: func(context.Context, string) (*models.User, error) { return nil, nil },
		createFn:        func(context.Context, *models.User) error { return nil },
		updateFn:        func(context.Context, *models.User) error { return nil },
		deleteFn:        func(context.Context, uint) error { return nil },
		listFn:          func(context.Context, int, int) ([]models.User, error) { return nil, nil },
		searchFn:        func(context.Context, string, int) ([]models.User, error) { return nil, nil },
		recentFn:        func(context.Context, int) ([]models.User, error) { return nil, nil },
	}
}

type friendRepoStub struct {
	getByIDFn               func(context.Context, uint) (*models.Friend, error)
	getPairFn               func(context.Context, uint, uint) (*models.Friend, error)
	createFn                func(context.Context, *models.Friend) error
	updateStatusFn          func(context.Context, uint, models.FriendshipStatus) error
	deleteFn                func(context.Context, uint) error
	deleteBetweenFn         func(context.Context, uint, uint) error
	listByUserAndStatusFn   func(context.Context, uint, models.FriendshipStatus) ([]models.Friend, error)
	listByFriendAndStatusFn func(context.Context, uint, models.FriendshipStatus) ([]models.Friend, error)
	friendsOfFn             func(context.Context, uint) ([]models.User, error)
}

func (s *friendRepoStub) GetByID(ctx context.Context, id uint) (*models.Friend, error) {
	return s.getByIDFn(ctx, id)
}
func (s *friendRepoStub) GetPair(ctx context.Context, userID, friendID uint) (*models.Friend, error) {
	return s.getPairFn(ctx, userID, friendID)
}
func (s *friendRepoStub) Create(ctx context.Context, friend *models.Friend) error {
	return s.createFn(ctx, friend)
}
func (s *friendRepoStub) UpdateStatus(ctx context.Context, id uint, status models.FriendshipStatus) error {
	return s.updateStatusFn(ctx, id, status)
}
func (s *friendRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *friendRepoStub) DeleteBetween(ctx context.Context, u1, u2 uint) error {
	return s.deleteBetweenFn(ctx, u1, u2)
}
func (s *friendRepoStub) ListByUserAndStatus(ctx context.Context, userID uint, status models.FriendshipStatus) ([]models.Friend, error) {
	return s.listByUserAndStatusFn(ctx, userID, status)
}
func (s *friendRepoStub) ListByFriendAndStatus(ctx context.Context, friendID uint, status models.FriendshipStatus) ([]models.Friend, error) {
	return s.listByFriendAndStatusFn(ctx, friendID, status)
}
func (s *friendRepoStub) FriendsOf(ctx context.Context, userID uint) ([]models.User, error) {
	return s.friendsOfFn(ctx, userID)
}

func noopFriendRepo() *friendRepoStub {
	return &friendRepoStub{
		getByIDFn:               func(context.Context, uint) (*models.Friend, error) { return &models.Friend{}, nil },
		getPairFn:               func(context.Context, uint, uint) (*models.Friend, error) { return nil, nil },
		createFn:                func(context.Context, *models.Friend) error { return nil },
		updateStatusFn:          func(context.Context, uint, models.FriendshipStatus) error { return nil },
		deleteFn:                func(context.Context, uint) error { return nil },
		deleteBetweenFn:         func(context.Context, uint, uint) error { return nil },
		listByUserAndStatusFn:   func(context.Context, uint, models.FriendshipStatus) ([]models.Friend, error) { return nil, nil },
		listByFriendAndStatusFn: func(context.Context, uint, models.FriendshipStatus) ([]models.Friend, error) { return nil, nil },
		friendsOfFn:             func(context.Context, uint) ([]models.User, error) { return nil, nil },
	}
}

type interactionRepoStub struct {
	getByIDFn               func(context.Context, uint) (*models.Interaction, error)
	findFn                  func(context.Context, uint, uint, models.InteractionType) (*models.Interaction, error)
	createFn                func(context.Context, *models.Interaction) error
	updateFn                func(context.Context, *models.Interaction) error
	deleteFn                func(context.Context, uint) error
	deleteMatchingFn        func(context.Context, uint, uint, models.InteractionType) (int64, error)
	deleteByRecipeAndTypeFn func(context.Context, uint, models.InteractionType) (int64, error)
	countByRecipeFn         func(context.Context, uint, models.InteractionType) (int64, error)
	listAllByRecipeFn       func(context.Context, uint) ([]models.Interaction, error)
	listByRecipeFn          func(context.Context, uint, models.InteractionType) ([]models.Interaction, error)
	listByUserFn            func(context.Context, uint, models.InteractionType) ([]models.Interaction, error)
}

func (s *interactionRepoStub) GetByID(ctx context.Context, id uint) (*models.Interaction, error) {
	return s.getByIDFn(ctx, id)
}
func (s *interactionRepoStub) Find(ctx context.Context, userID, recipeID uint, typ models.InteractionType) (*models.Interaction, error) {
	return s.findFn(ctx, userID, recipeID, typ)
}
func (s *interactionRepoStub) Create(ctx context.Context, i *models.Interaction) error {
	return s.createFn(ctx, i)
}
func (s *interactionRepoStub) Update(ctx context.Context, i *models.Interaction) error {
	return s.updateFn(ctx, i)
}
func (s *interactionRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *interactionRepoStub) DeleteMatching(ctx context.Context, userID, recipeID uint, typ models.InteractionType) (int64, error) {
	return s.deleteMatchingFn(ctx, userID, recipeID, typ)
}
func (s *interactionRepoStub) DeleteByRecipeAndType(ctx context.Context, recipeID uint, typ models.InteractionType) (int64, error) {
	return s.deleteByRecipeAndTypeFn(ctx, recipeID, typ)
}
func (s *interactionRepoStub) CountByRecipe(ctx context.Context, recipeID uint, typ models.InteractionType) (int64, error) {
	return s.countByRecipeFn(ctx, recipeID, typ)
}
func (s *interactionRepoStub) ListAllByRecipe(ctx context.Context, recipeID uint) ([]models.Interaction, error) {
	return s.listAllByRecipeFn(ctx, recipeID)
}
func (s *interactionRepoStub) ListByRecipe(ctx context.Context, recipeID uint, typ models.InteractionType) ([]models.Interaction, error) {
	return s.listByRecipeFn(ctx, recipeID, typ)
}
func (s *interactionRepoStub) ListByUser(ctx context.Context, userID uint, typ models.InteractionType) ([]models.Interaction, error) {
	return s.listByUserFn(ctx, userID, typ)
}

func noopInteractionRepo() *interactionRepoStub {
	return &interactionRepoStub{
		getByIDFn: func(context.Context, uint) (*models.Interaction, error) { return &models.Interaction{}, nil },
		findFn: func(context.Context, uint, uint, models.InteractionType) (*models.Interaction, error) {
			return nil, nil
		},
		createFn: func(context.Context, *models.Interaction) error { return nil },
		updateFn: func(context.Context, *models.Interaction) error { return nil },
		deleteFn: func(context.Context, uint) error { return nil },
		deleteMatchingFn: func(context.Context, uint, uint, models.InteractionType) (int64, error) {
			return 0, nil
		},
		deleteByRecipeAndTypeFn: func(context.Context, uint, models.InteractionType) (int64, error) {
			return 0, nil
		},
		countByRecipeFn:   func(context.Context, uint, models.InteractionType) (int64, error) { return 0, nil },
		listAllByRecipeFn: func(context.Context, uint) ([]models.Interaction, error) { return nil, nil },
		listByRecipeFn: func(context.Context, uint, models.InteractionType) ([]models.Interaction, error) {
			return nil, nil
		},
		listByUserFn: func(context.Context, uint, models.InteractionType) ([]models.Interaction, error) {
			return nil, nil
		},
	}
}

type postRepoStub struct {
	getByIDFn       func(context.Context, uint) (*models.Post, error)
	getByUserFn     func(context.Context, uint) ([]models.Post, error)
	getByCategoryFn func(context.Context, string) ([]models.Post, error)
	listFn          func(context.Context, int, int) ([]models.Post, error)
	searchFn        func(context.Context, string, int) ([]models.Post, error)
	createFn        func(context.Context, *models.Post) error
	updateFn        func(context.Context, *models.Post) error
	deleteFn        func(context.Context, uint) error
	allMediaURLsFn  func(context.Context) ([]string, error)
}

func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) GetByUser(ctx context.Context, userID uint) ([]models.Post, error) {
	return s.getByUserFn(ctx, userID)
}
func (s *postRepoStub) GetByCategory(ctx context.Context, category string) ([]models.Post, error) {
	return s.getByCategoryFn(ctx, category)
}
func (s *postRepoStub) List(ctx context.Context, limit, offset int) ([]models.Post, error) {
	return s.listFn(ctx, limit, offset)
}
func (s *postRepoStub) Search(ctx context.Context, q string, limit int) ([]models.Post, error) {
	return s.searchFn(ctx, q, limit)
}
func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) Update(ctx context.Context, post *models.Post) error {
	return s.updateFn(ctx, post)
}
func (s *postRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *postRepoStub) AllMediaURLs(ctx context.Context) ([]string, error) {
	return s.allMediaURLsFn(ctx)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		getByIDFn:       func(context.Context, uint) (*models.Post, error) { return &models.Post{}, nil },
		getByUserFn:     func(context.Context, uint) ([]models.Post, error) { return nil, nil },
		getByCategoryFn: func(context.Context, string) ([]models.Post, error) { return nil, nil },
		listFn:          func(context.Context, int, int) ([]models.Post, error) { return nil, nil },
		searchFn:        func(context.Context, string, int) ([]models.Post, error) { return nil, nil },
		createFn:        func(context.Context, *models.Post) error { return nil },
		updateFn:        func(context.Context, *models.Post) error { return nil },
		deleteFn:        func(context.Context, uint) error { return nil },
		allMediaURLsFn:  func(context.Context) ([]string, error) { return nil, nil },
	}
}

type eventRepoStub struct {
	getByIDFn   func(context.Context, uint) (*models.Event, error)
	getByUserFn func(context.Context, uint) ([]models.Event, error)
	listFn      func(context.Context, int, int) ([]models.Event, error)
	searchFn    func(context.Context, string) ([]models.Event, error)
	createFn    func(context.Context, *models.Event) error
	updateFn    func(context.Context, *models.Event) error
	deleteFn    func(context.Context, uint) error
}

func (s *eventRepoStub) GetByID(ctx context.Context, id uint) (*models.Event, error) {
	return s.getByIDFn(ctx, id)
}
func (s *eventRepoStub) GetByUser(ctx context.Context, userID uint) ([]models.Event, error) {
	return s.getByUserFn(ctx, userID)
}
func (s *eventRepoStub) List(ctx context.Context, limit, offset int) ([]models.Event, error) {
	return s.listFn(ctx, limit, offset)
}
func (s *eventRepoStub) Search(ctx context.Context, q string) ([]models.Event, error) {
	return s.searchFn(ctx, q)
}
func (s *eventRepoStub) Create(ctx context.Context, event *models.Event) error {
	return s.createFn(ctx, event)
}
func (s *eventRepoStub) Update(ctx context.Context, event *models.Event) error {
	return s.updateFn(ctx, event)
}
func (s *eventRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopEventRepo() *eventRepoStub {
	return &eventRepoStub{
		getByIDFn:   func(context.Context, uint) (*models.Event, error) { return &models.Event{}, nil },
		getByUserFn: func(context.Context, uint) ([]models.Event, error) { return nil, nil },
		listFn:      func(context.Context, int, int) ([]models.Event, error) { return nil, nil },
		searchFn:    func(context.Context, string) ([]models.Event, error) { return nil, nil },
		createFn:    func(context.Context, *models.Event) error { return nil },
		updateFn:    func(context.Context, *models.Event) error { return nil },
		deleteFn:    func(context.Context, uint) error { return nil },
	}
}

type savedRepoStub struct {
	getFn         func(context.Context, uint, uint) (*models.SavedRecipe, error)
	listByUserFn  func(context.Context, uint) ([]models.SavedRecipe, error)
	createFn      func(context.Context, *models.SavedRecipe) error
	updateFn      func(context.Context, *models.SavedRecipe) error
	deleteFn      func(context.Context, uint, uint) (int64, error)
	countByPostFn func(context.Context, uint) (int64, error)
}

func (s *savedRepoStub) Get(ctx context.Context, userID, postID uint) (*models.SavedRecipe, error) {
	return s.getFn(ctx, userID, postID)
}
func (s *savedRepoStub) ListByUser(ctx context.Context, userID uint) ([]models.SavedRecipe, error) {
	return s.listByUserFn(ctx, userID)
}
func (s *savedRepoStub) Create(ctx context.Context, saved *models.SavedRecipe) error {
	return s.createFn(ctx, saved)
}
func (s *savedRepoStub) Update(ctx context.Context, saved *models.SavedRecipe) error {
	return s.updateFn(ctx, saved)
}
func (s *savedRepoStub) Delete(ctx context.Context, userID, postID uint) (int64, error) {
	return s.deleteFn(ctx, userID, postID)
}
func (s *savedRepoStub) CountByPost(ctx context.Context, postID uint) (int64, error) {
	return s.countByPostFn(ctx, postID)
}

func noopSavedRepo() *savedRepoStub {
	return &savedRepoStub{
		getFn:         func(context.Context, uint, uint) (*models.SavedRecipe, error) { return nil, nil },
		listByUserFn:  func(context.Context, uint) ([]models.SavedRecipe, error) { return nil, nil },
		createFn:      func(context.Context, *models.SavedRecipe) error { return nil },
		updateFn:      func(context.Context, *models.SavedRecipe) error { return nil },
		deleteFn:      func(context.Context, uint, uint) (int64, error) { return 1, nil },
		countByPostFn: func(context.Context, uint) (int64, error) { return 0, nil },
	}
}

type groupRepoStub struct {
	getByIDFn                func(context.Context, uint) (*models.RecipeGroup, error)
	getByNameFn              func(context.Context, string) (*models.RecipeGroup, error)
	listFn                   func(context.Context, int, int) ([]models.RecipeGroup, error)
	listByCreatorFn          func(context.Context, uint) ([]models.RecipeGroup, error)
	searchFn                 func(context.Context, string, int) ([]models.RecipeGroup, error)
	createWithAdminFn        func(context.Context, *models.RecipeGroup) error
	updateFn                 func(context.Context, *models.RecipeGroup) error
	deleteWithMembersFn      func(context.Context, uint) error
	getMemberFn              func(context.Context, uint, uint) (*models.RecipeGroupMember, error)
	createMemberFn           func(context.Context, *models.RecipeGroupMember) error
	updateMemberFn           func(context.Context, *models.RecipeGroupMember) error
	deleteMemberFn           func(context.Context, uint, uint) error
	listMembersFn            func(context.Context, uint) ([]models.RecipeGroupMember, error)
	listMembersByStatusFn    func(context.Context, uint, models.MembershipStatus) ([]models.RecipeGroupMember, error)
	listMembersByRoleFn      func(context.Context, uint, models.MemberRole) ([]models.RecipeGroupMember, error)
	countActiveMembersFn     func(context.Context, uint) (int64, error)
	listPublicFn             func(context.Context) ([]models.RecipeGroup, error)
	listMembershipsForUserFn func(context.Context, uint) ([]models.RecipeGroupMember, error)
	listGroupsForUserFn      func(context.Context, uint) ([]models.RecipeGroup, error)
}

func (s *groupRepoStub) GetByID(ctx context.Context, id uint) (*models.RecipeGroup, error) {
	return s.getByIDFn(ctx, id)
}
func (s *groupRepoStub) GetByName(ctx context.Context, name string) (*models.RecipeGroup, error) {
	return s.getByNameFn(ctx, name)
}
func (s *groupRepoStub) List(ctx context.Context, limit, offset int) ([]models.RecipeGroup, error) {
	return s.listFn(ctx, limit, offset)
}
func (s *groupRepoStub) ListByCreator(ctx context.Context, creatorID uint) ([]models.RecipeGroup, error) {
	return s.listByCreatorFn(ctx, creatorID)
}
func (s *groupRepoStub) Search(ctx context.Context, q string, limit int) ([]models.RecipeGroup, error) {
	return s.searchFn(ctx, q, limit)
}
func (s *groupRepoStub) CreateWithAdmin(ctx context.Context, group *models.RecipeGroup) error {
	return s.createWithAdminFn(ctx, group)
}
func (s *groupRepoStub) Update(ctx context.Context, group *models.RecipeGroup) error {
	return s.updateFn(ctx, group)
}
func (s *groupRepoStub) DeleteWithMembers(ctx context.Context, id uint) error {
	return s.deleteWithMembersFn(ctx, id)
}
func (s *groupRepoStub) GetMember(ctx context.Context, groupID, userID uint) (*models.RecipeGroupMember, error) {
	return s.getMemberFn(ctx, groupID, userID)
}
func (s *groupRepoStub) CreateMember(ctx context.Context, member *models.RecipeGroupMember) error {
	return s.createMemberFn(ctx, member)
}
func (s *groupRepoStub) UpdateMember(ctx context.Context, member *models.RecipeGroupMember) error {
	return s.updateMemberFn(ctx, member)
}
func (s *groupRepoStub) DeleteMember(ctx context.Context, groupID, userID uint) error {
	return s.deleteMemberFn(ctx, groupID, userID)
}
func (s *groupRepoStub) ListMembers(ctx context.Context, groupID uint) ([]models.RecipeGroupMember, error) {
	return s.listMembersFn(ctx, groupID)
}
func (s *groupRepoStub) ListMembersByStatus(ctx context.Context, groupID uint, status models.MembershipStatus) ([]models.RecipeGroupMember, error) {
	return s.listMembersByStatusFn(ctx, groupID, status)
}
func (s *groupRepoStub) ListMembersByRole(ctx context.Context, groupID uint, role models.MemberRole) ([]models.RecipeGroupMember, error) {
	return s.listMembersByRoleFn(ctx, groupID, role)
}
func (s *groupRepoStub) CountActiveMembers(ctx context.Context, groupID uint) (int64, error) {
	return s.countActiveMembersFn(ctx, groupID)
}
func (s *groupRepoStub) ListPublic(ctx context.Context) ([]models.RecipeGroup, error) {
	return s.listPublicFn(ctx)
}
func (s *groupRepoStub) ListMembershipsForUser(ctx context.Context, userID uint) ([]models.RecipeGroupMember, error) {
	return s.listMembershipsForUserFn(ctx, userID)
}
func (s *groupRepoStub) ListGroupsForUser(ctx context.Context, userID uint) ([]models.RecipeGroup, error) {
	return s.listGroupsForUserFn(ctx, userID)
}

func noopGroupRepo() *groupRepoStub {
	return &groupRepoStub{
		getByIDFn:           func(context.Context, uint) (*models.RecipeGroup, error) { return &models.RecipeGroup{}, nil },
		getByNameFn:         func(context.Context, string) (*models.RecipeGroup, error) { return nil, nil },
		listFn:              func(context.Context, int, int) ([]models.RecipeGroup, error) { return nil, nil },
		listByCreatorFn:     func(context.Context, uint) ([]models.RecipeGroup, error) { return nil, nil },
		searchFn:            func(context.Context, string, int) ([]models.RecipeGroup, error) { return nil, nil },
		createWithAdminFn:   func(context.Context, *models.RecipeGroup) error { return nil },
		updateFn:            func(context.Context, *models.RecipeGroup) error { return nil },
		deleteWithMembersFn: func(context.Context, uint) error { return nil },
		getMemberFn: func(context.Context, uint, uint) (*models.RecipeGroupMember, error) {
			return nil, nil
		},
		createMemberFn: func(context.Context, *models.RecipeGroupMember) error { return nil },
		updateMemberFn: func(context.Context, *models.RecipeGroupMember) error { return nil },
		deleteMemberFn: func(context.Context, uint, uint) error { return nil },
		listMembersFn:  func(context.Context, uint) ([]models.RecipeGroupMember, error) { return nil, nil },
		listMembersByStatusFn: func(context.Context, uint, models.MembershipStatus) ([]models.RecipeGroupMember, error) {
			return nil, nil
		},
		listMembersByRoleFn: func(context.Context, uint, models.MemberRole) ([]models.RecipeGroupMember, error) {
			return nil, nil
		},
		countActiveMembersFn: func(context.Context, uint) (int64, error) { return 0, nil },
		listPublicFn:         func(context.Context) ([]models.RecipeGroup, error) { return nil, nil },
		listMembershipsForUserFn: func(context.Context, uint) ([]models.RecipeGroupMember, error) {
			return nil, nil
		},
		listGroupsForUserFn: func(context.Context, uint) ([]models.RecipeGroup, error) { return nil, nil },
	}
}

type commentRepoStub struct {
	getByIDFn    func(context.Context, uint) (*models.Comment, error)
	listFn       func(context.Context, int, int) ([]models.Comment, error)
	getByPostFn  func(context.Context, uint) ([]models.Comment, error)
	getByEventFn func(context.Context, uint) ([]models.Comment, error)
	getByUserFn  func(context.Context, uint) ([]models.Comment, error)
	createFn     func(context.Context, *models.Comment) error
	updateFn     func(context.Context, *models.Comment) error
	deleteFn     func(context.Context, uint) error
}

func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) List(ctx context.Context, limit, offset int) ([]models.Comment, error) {
	return s.listFn(ctx, limit, offset)
}
func (s *commentRepoStub) GetByPost(ctx context.Context, postID uint) ([]models.Comment, error) {
	return s.getByPostFn(ctx, postID)
}
func (s *commentRepoStub) GetByEvent(ctx context.Context, eventID uint) ([]models.Comment, error) {
	return s.getByEventFn(ctx, eventID)
}
func (s *commentRepoStub) GetByUser(ctx context.Context, userID uint) ([]models.Comment, error) {
	return s.getByUserFn(ctx, userID)
}
func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) Update(ctx context.Context, comment *models.Comment) error {
	return s.updateFn(ctx, comment)
}
func (s *commentRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		getByIDFn:    func(context.Context, uint) (*models.Comment, error) { return &models.Comment{}, nil },
		listFn:       func(context.Context, int, int) ([]models.Comment, error) { return nil, nil },
		getByPostFn:  func(context.Context, uint) ([]models.Comment, error) { return nil, nil },
		getByEventFn: func(context.Context, uint) ([]models.Comment, error) { return nil, nil },
		getByUserFn:  func(context.Context, uint) ([]models.Comment, error) { return nil, nil },
		createFn:     func(context.Context, *models.Comment) error { return nil },
		updateFn:     func(context.Context, *models.Comment) error { return nil },
		deleteFn:     func(context.Context, uint) error { return nil },
	}
}

type categoryRepoStub struct {
	getByIDFn   func(context.Context, uint) (*models.Category, error)
	getByNameFn func(context.Context, string) (*models.Category, error)
	listFn      func(context.Context) ([]models.Category, error)
	searchFn    func(context.Context, string) ([]models.Category, error)
	createFn    func(context.Context, *models.Category) error
	updateFn    func(context.Context, *models.Category) error
	deleteFn    func(context.Context, uint) error
}

func (s *categoryRepoStub) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	return s.getByIDFn(ctx, id)
}
func (s *categoryRepoStub) GetByName(ctx context.Context, name string) (*models.Category, error) {
	return s.getByNameFn(ctx, name)
}
func (s *categoryRepoStub) List(ctx context.Context) ([]models.Category, error) {
	return s.listFn(ctx)
}
func (s *categoryRepoStub) Search(ctx context.Context, q string) ([]models.Category, error) {
	return s.searchFn(ctx, q)
}
func (s *categoryRepoStub) Create(ctx context.Context, category *models.Category) error {
	return s.createFn(ctx, category)
}
func (s *categoryRepoStub) Update(ctx context.Context, category *models.Category) error {
	return s.updateFn(ctx, category)
}
func (s *categoryRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopCategoryRepo() *categoryRepoStub {
	return &categoryRepoStub{
		getByIDFn:   func(context.Context, uint) (*models.Category, error) { return &models.Category{}, nil },
		getByNameFn: func(context.Context, string) (*models.Category, error) { return nil, nil },
		listFn:      func(context.Context) ([]models.Category, error) { return nil, nil },
		searchFn:    func(context.Context, string) ([]models.Category, error) { return nil, nil },
		createFn:    func(context.Context, *models.Category) error { return nil },
		updateFn:    func(context.Context, *models.Category) error { return nil },
		deleteFn:    func(context.Context, uint) error { return nil },
	}
}

// mediaStub records saves and deletes without touching the filesystem.
type mediaStub struct {
	saveFn  func(*multipart.FileHeader) (string, error)
	deleted []string
}

func (m *mediaStub) Save(file *multipart.FileHeader) (string, error) {
	if m.saveFn != nil {
		return m.saveFn(file)
	}
	return "/uploads/images/stub_" + file.Filename, nil
}

func (m *mediaStub) Delete(urlPath, trigger string) {
	m.deleted = append(m.deleted, urlPath)
}
