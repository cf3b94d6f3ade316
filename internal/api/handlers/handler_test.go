package handlers_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"recipeshare/entities"
	"recipeshare/internal/api/handlers"
	"recipeshare/internal/api/routes"
	"recipeshare/internal/middleware"
	"recipeshare/internal/utils"
	"recipeshare/pkg/cookbook"
	"recipeshare/pkg/recipe"
	"recipeshare/pkg/session"
	"recipeshare/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type mockUserRepository struct{ mock.Mock }

func (m *mockUserRepository) CreateUser(ctx context.Context, u *entities.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *mockUserRepository) GetUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepository) UpdatePassword(ctx context.Context, userID string, hashed string) error {
	return m.Called(ctx, userID, hashed).Error(0)
}

type mockRecipeRepository struct{ mock.Mock }

func (m *mockRecipeRepository) CreateRecipeWithOwner(ctx context.Context, r *entities.Recipe, ownerID uuid.UUID) error {
	return m.Called(ctx, r, ownerID).Error(0)
}

func (m *mockRecipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Recipe), args.Error(1)
}

func (m *mockRecipeRepository) SearchRecipes(ctx context.Context, pattern string) ([]*entities.Recipe, error) {
	args := m.Called(ctx, pattern)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Recipe), args.Error(1)
}

func (m *mockRecipeRepository) GetOwnedRecipes(ctx context.Context, userID string) ([]*entities.Recipe, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Recipe), args.Error(1)
}

func (m *mockRecipeRepository) CreateLike(ctx context.Context, userID, recipeID uuid.UUID) error {
	return m.Called(ctx, userID, recipeID).Error(0)
}

func (m *mockRecipeRepository) GetLikedRecipes(ctx context.Context, userID string) ([]*entities.Recipe, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Recipe), args.Error(1)
}

type mockCookbookRepository struct{ mock.Mock }

func (m *mockCookbookRepository) CreateCookbookWithOwner(ctx context.Context, cb *entities.Cookbook, ownerID uuid.UUID) error {
	return m.Called(ctx, cb, ownerID).Error(0)
}

func (m *mockCookbookRepository) GetCookbookByID(ctx context.Context, id string) (*entities.Cookbook, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Cookbook), args.Error(1)
}

func (m *mockCookbookRepository) GetCookbookOwner(ctx context.Context, cookbookID string) (*entities.CookbookOwner, error) {
	args := m.Called(ctx, cookbookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.CookbookOwner), args.Error(1)
}

func (m *mockCookbookRepository) GetOwnedCookbooks(ctx context.Context, userID string) ([]*entities.Cookbook, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Cookbook), args.Error(1)
}

func (m *mockCookbookRepository) CreateSavedRecipe(ctx context.Context, cookbookID, recipeID uuid.UUID) error {
	return m.Called(ctx, cookbookID, recipeID).Error(0)
}

func (m *mockCookbookRepository) GetCookbookRecipes(ctx context.Context, cookbookID string) ([]*entities.Recipe, error) {
	args := m.Called(ctx, cookbookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Recipe), args.Error(1)
}

type testEnv struct {
	app          *fiber.App
	userRepo     *mockUserRepository
	recipeRepo   *mockRecipeRepository
	cookbookRepo *mockCookbookRepository
}

func setupTestApp(t *testing.T) *testEnv {
	t.Helper()
	utils.InitValidator()

	env := &testEnv{
		app:          fiber.New(),
		userRepo:     new(mockUserRepository),
		recipeRepo:   new(mockRecipeRepository),
		cookbookRepo: new(mockCookbookRepository),
	}

	sessionService := session.NewSessionService()
	userService := user.NewUserService(env.userRepo, nil, nil)
	recipeService := recipe.NewRecipeService(env.recipeRepo)
	cookbookService := cookbook.NewCookbookService(env.cookbookRepo)

	routesConfig := routes.Config{
		App:             env.app,
		UserHandler:     handlers.NewUserHandler(userService, recipeService, cookbookService, sessionService, utils.Validate),
		RecipeHandler:   handlers.NewRecipeHandler(recipeService, nil, utils.Validate),
		CookbookHandler: handlers.NewCookbookHandler(cookbookService, recipeService, utils.Validate),
		Middleware:      middleware.NewMiddleware(),
		SessionService:  sessionService,
	}
	routesConfig.Setup()

	return env
}

func formRequest(method, target string, form url.Values) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// loginAs stubs the credential lookup and returns the session cookies of an
// authenticated user.
func loginAs(t *testing.T, env *testEnv, userID uuid.UUID, username, password string) []*http.Cookie {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	assert.NoError(t, err)
	env.userRepo.On("GetUserByUsername", mock.Anything, username).Return(&entities.User{
		ID:       userID,
		Username: username,
		Password: string(hashed),
	}, nil)

	resp, err := env.app.Test(formRequest("POST", "/login", url.Values{
		"username": {username},
		"password": {password},
	}), -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
	assert.NotEmpty(t, resp.Cookies())

	return resp.Cookies()
}

func TestRegister_EmptyUsernameRejected(t *testing.T) {
	env := setupTestApp(t)

	resp, err := env.app.Test(formRequest("POST", "/register", url.Values{
		"username": {""},
		"password": {"p1"},
	}), -1)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	env.userRepo.AssertNotCalled(t, "CreateUser")
}

func TestRegister_RedirectsToLogin(t *testing.T) {
	env := setupTestApp(t)

	env.userRepo.On("CreateUser", mock.Anything, mock.Anything).Return(nil)

	resp, err := env.app.Test(formRequest("POST", "/register", url.Values{
		"username": {"alice"},
		"password": {"p1"},
	}), -1)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestRegister_DuplicateUsernameConflict(t *testing.T) {
	env := setupTestApp(t)

	env.userRepo.On("CreateUser", mock.Anything, mock.Anything).Return(gorm.ErrDuplicatedKey)

	resp, err := env.app.Test(formRequest("POST", "/register", url.Values{
		"username": {"alice"},
		"password": {"p1"},
	}), -1)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestLogin_UnknownUserRedirectsToRegister(t *testing.T) {
	env := setupTestApp(t)

	env.userRepo.On("GetUserByUsername", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

	resp, err := env.app.Test(formRequest("POST", "/login", url.Values{
		"username": {"ghost"},
		"password": {"p1"},
	}), -1)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/register", resp.Header.Get("Location"))
}

func TestLogin_WrongPasswordRerendersLogin(t *testing.T) {
	env := setupTestApp(t)

	hashed, err := bcrypt.GenerateFromPassword([]byte("right"), bcrypt.DefaultCost)
	assert.NoError(t, err)
	env.userRepo.On("GetUserByUsername", mock.Anything, "alice").Return(&entities.User{
		ID:       uuid.New(),
		Username: "alice",
		Password: string(hashed),
	}, nil)

	resp, err := env.app.Test(formRequest("POST", "/login", url.Values{
		"username": {"alice"},
		"password": {"wrong"},
	}), -1)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Incorrect password. Try again.")
}

func TestProtectedRouteRedirectsWithoutSession(t *testing.T) {
	env := setupTestApp(t)

	resp, err := env.app.Test(httptest.NewRequest("GET", "/addRecipe", nil), -1)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestProfile_ListsOwnedContent(t *testing.T) {
	env := setupTestApp(t)
	userID := uuid.New()

	cookies := loginAs(t, env, userID, "alice", "p1")

	env.userRepo.On("GetUserByID", mock.Anything, userID.String()).Return(&entities.User{
		ID:       userID,
		Username: "alice",
	}, nil)
	env.recipeRepo.On("GetOwnedRecipes", mock.Anything, userID.String()).Return([]*entities.Recipe{
		{ID: uuid.New(), Name: "Eggs"},
	}, nil)
	env.cookbookRepo.On("GetOwnedCookbooks", mock.Anything, userID.String()).Return([]*entities.Cookbook{
		{ID: uuid.New(), Name: "Breakfast"},
	}, nil)

	req := httptest.NewRequest("GET", "/profile", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	resp, err := env.app.Test(req, -1)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "alice")
	assert.Contains(t, string(body), "Eggs")
	assert.Contains(t, string(body), "Breakfast")
}

func TestAddRecipe_NonNumericTimeFailsWithoutWrite(t *testing.T) {
	env := setupTestApp(t)

	cookies := loginAs(t, env, uuid.New(), "alice", "p1")

	req := formRequest("POST", "/addRecipe", url.Values{
		"name":         {"Eggs"},
		"difficulty":   {"1"},
		"time":         {"a"},
		"ingredients":  {"egg"},
		"instructions": {"cook"},
	})
	for _, c := range cookies {
		req.AddCookie(c)
	}
	resp, err := env.app.Test(req, -1)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Failed to create recipe")
	env.recipeRepo.AssertNotCalled(t, "CreateRecipeWithOwner")
}

func TestAddRecipe_Success(t *testing.T) {
	env := setupTestApp(t)
	userID := uuid.New()

	cookies := loginAs(t, env, userID, "alice", "p1")
	env.recipeRepo.On("CreateRecipeWithOwner", mock.Anything, mock.AnythingOfType("*entities.Recipe"), userID).Return(nil)

	req := formRequest("POST", "/addRecipe", url.Values{
		"name":         {"Eggs"},
		"difficulty":   {"1"},
		"time":         {"10"},
		"ingredients":  {"egg"},
		"instructions": {"cook"},
	})
	for _, c := range cookies {
		req.AddCookie(c)
	}
	resp, err := env.app.Test(req, -1)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Succesfully created recipe")
	env.recipeRepo.AssertExpectations(t)
}

func TestViewCookbook_NonOwnerGets404(t *testing.T) {
	env := setupTestApp(t)
	cookbookID := uuid.New()

	cookies := loginAs(t, env, uuid.New(), "mallory", "p2")

	env.cookbookRepo.On("GetCookbookOwner", mock.Anything, cookbookID.String()).Return(&entities.CookbookOwner{
		UserID:     uuid.New(),
		CookbookID: cookbookID,
	}, nil)

	req := httptest.NewRequest("GET", "/cookbook?cookbookId="+cookbookID.String(), nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	resp, err := env.app.Test(req, -1)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	env.cookbookRepo.AssertNotCalled(t, "GetCookbookRecipes")
}

func TestViewCookbook_MissingCookbookGets404(t *testing.T) {
	env := setupTestApp(t)
	cookbookID := uuid.New()

	cookies := loginAs(t, env, uuid.New(), "alice", "p1")

	env.cookbookRepo.On("GetCookbookOwner", mock.Anything, cookbookID.String()).Return(nil, gorm.ErrRecordNotFound)

	req := httptest.NewRequest("GET", "/cookbook?cookbookId="+cookbookID.String(), nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	resp, err := env.app.Test(req, -1)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestSaveRecipe_RedirectsToCookbook(t *testing.T) {
	env := setupTestApp(t)
	userID := uuid.New()
	cookbookID := uuid.New()
	recipeID := uuid.New()

	cookies := loginAs(t, env, userID, "alice", "p1")

	env.cookbookRepo.On("GetCookbookOwner", mock.Anything, cookbookID.String()).Return(&entities.CookbookOwner{
		UserID:     userID,
		CookbookID: cookbookID,
	}, nil)
	env.cookbookRepo.On("CreateSavedRecipe", mock.Anything, cookbookID, recipeID).Return(nil)

	req := formRequest("POST", "/saveRecipe", url.Values{
		"recipeID":   {recipeID.String()},
		"cookbookId": {cookbookID.String()},
	})
	for _, c := range cookies {
		req.AddCookie(c)
	}
	resp, err := env.app.Test(req, -1)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/cookbook?cookbookId="+cookbookID.String(), resp.Header.Get("Location"))
}

func TestSaveRecipe_NonOwnerGets500(t *testing.T) {
	env := setupTestApp(t)
	cookbookID := uuid.New()

	cookies := loginAs(t, env, uuid.New(), "mallory", "p2")

	env.cookbookRepo.On("GetCookbookOwner", mock.Anything, cookbookID.String()).Return(&entities.CookbookOwner{
		UserID:     uuid.New(),
		CookbookID: cookbookID,
	}, nil)

	req := formRequest("POST", "/saveRecipe", url.Values{
		"recipeID":   {uuid.New().String()},
		"cookbookId": {cookbookID.String()},
	})
	for _, c := range cookies {
		req.AddCookie(c)
	}
	resp, err := env.app.Test(req, -1)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	env.cookbookRepo.AssertNotCalled(t, "CreateSavedRecipe")
}

func TestViewRecipe_NotFound(t *testing.T) {
	env := setupTestApp(t)
	recipeID := uuid.New()

	env.recipeRepo.On("GetRecipeByID", mock.Anything, recipeID.String()).Return(nil, gorm.ErrRecordNotFound)

	resp, err := env.app.Test(httptest.NewRequest("GET", "/viewRecipe?recipeId="+recipeID.String(), nil), -1)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestViewRecipe_MalformedIDGets404WithoutQuery(t *testing.T) {
	env := setupTestApp(t)

	resp, err := env.app.Test(httptest.NewRequest("GET", "/viewRecipe?recipeId=not-a-uuid", nil), -1)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	env.recipeRepo.AssertNotCalled(t, "GetRecipeByID")
}

func TestViewCookbook_MalformedIDGets404WithoutQuery(t *testing.T) {
	env := setupTestApp(t)

	cookies := loginAs(t, env, uuid.New(), "alice", "p1")

	req := httptest.NewRequest("GET", "/cookbook?cookbookId=not-a-uuid", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	resp, err := env.app.Test(req, -1)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	env.cookbookRepo.AssertNotCalled(t, "GetCookbookOwner")
}

func TestLogout_DropsSession(t *testing.T) {
	env := setupTestApp(t)

	cookies := loginAs(t, env, uuid.New(), "alice", "p1")

	req := httptest.NewRequest("GET", "/logout", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	resp, err := env.app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// The old cookie no longer authenticates.
	req = httptest.NewRequest("GET", "/profile", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	resp, err = env.app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestWelcome(t *testing.T) {
	env := setupTestApp(t)

	resp, err := env.app.Test(httptest.NewRequest("GET", "/welcome", nil), -1)

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]string
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "Welcome!", body["message"])
}
