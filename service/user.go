package service

import (
	"context"
	"errors"
	"time"

	"AutoSync/config"
	"AutoSync/dao"
	"AutoSync/models"
	"AutoSync/pkg/jwt"
	"AutoSync/types"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	Register(ctx context.Context, req *types.RegisterRequest, ip string) (*types.LoginResponse, error)
	Login(ctx context.Context, req *types.LoginRequest, ip string) (*types.LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*types.TokenPair, error)
	Logout(ctx context.Context, userID int64, ip string)
	Me(ctx context.Context, userID int64) (*models.User, error)

	List(ctx context.Context, f *types.UserFilter) ([]*models.User, int64, error)
	Get(ctx context.Context, id int64) (*models.User, error)
	Create(ctx context.Context, actor int64, req *types.CreateUserRequest, ip string) (*models.User, error)
	Update(ctx context.Context, actor, id int64, req *types.UpdateUserRequest, ip string) (*models.User, error)
	Delete(ctx context.Context, actor, id int64, ip string) error
	UpdatePassword(ctx context.Context, userID int64, req *types.UpdatePasswordRequest) error
	ToggleActive(ctx context.Context, actor, id int64, ip string) (*models.User, error)
}

type UserService struct {
	Users *dao.Users
	Audit IAuditService
	Conf  *config.Config
}

func (s *UserService) issueTokens(user *models.User) (types.TokenPair, error) {
	secret := []byte(s.Conf.Jwt.Secret)
	access, err := jwt.GenerateToken(secret, user.ID, user.Role, jwt.TypeAccess,
		time.Duration(s.Conf.Jwt.AccessExpire)*time.Second)
	if err != nil {
		return types.TokenPair{}, err
	}
	refresh, err := jwt.GenerateToken(secret, user.ID, user.Role, jwt.TypeRefresh,
		time.Duration(s.Conf.Jwt.RefreshExpire)*time.Second)
	if err != nil {
		return types.TokenPair{}, err
	}
	return types.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *UserService) Register(ctx context.Context, req *types.RegisterRequest, ip string) (*types.LoginResponse, error) {
	if s.Users.IsEmailTaken(ctx, req.Email) {
		return nil, errValidation("email %s is already registered", req.Email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errPersistence(err)
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hash),
		Role:     models.RoleViewer,
		Phone:    req.Phone,
		IsActive: true,
	}
	if err := s.Users.Create(ctx, user); err != nil {
		return nil, errPersistence(err)
	}

	s.Audit.Record(ctx, &user.ID, models.AuditActionCreate, user.TableName(), user.ID, nil, ip)

	tokens, err := s.issueTokens(user)
	if err != nil {
		return nil, errPersistence(err)
	}
	return &types.LoginResponse{User: user, Token: tokens}, nil
}

func (s *UserService) Login(ctx context.Context, req *types.LoginRequest, ip string) (*types.LoginResponse, error) {
	user, err := s.Users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errValidation("invalid credentials")
		}
		return nil, errPersistence(err)
	}
	if !user.IsActive {
		return nil, errValidation("account is disabled")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return nil, errValidation("invalid credentials")
	}

	_ = s.Users.TouchLastLogin(ctx, user.ID)
	s.Audit.Record(ctx, &user.ID, models.AuditActionLogin, user.TableName(), user.ID, nil, ip)

	tokens, err := s.issueTokens(user)
	if err != nil {
		return nil, errPersistence(err)
	}
	return &types.LoginResponse{User: user, Token: tokens}, nil
}

func (s *UserService) Refresh(ctx context.Context, refreshToken string) (*types.TokenPair, error) {
	claims, err := jwt.ParseToken([]byte(s.Conf.Jwt.Secret), jwt.TypeRefresh, refreshToken)
	if err != nil {
		return nil, errValidation("invalid refresh token")
	}
	user, err := s.Users.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, errNotFound("user %d not found", claims.UserID)
	}
	if !user.IsActive {
		return nil, errValidation("account is disabled")
	}
	tokens, err := s.issueTokens(user)
	if err != nil {
		return nil, errPersistence(err)
	}
	return &tokens, nil
}

// Logout only records the event. Tokens are stateless and expire on
// their own, so there is nothing to revoke server-side.
func (s *UserService) Logout(ctx context.Context, userID int64, ip string) {
	s.Audit.Record(ctx, &userID, models.AuditActionLogout, models.User{}.TableName(), userID, nil, ip)
}

func (s *UserService) Me(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.Users.FindByID(ctx, userID)
	if err != nil {
		return nil, errNotFound("user %d not found", userID)
	}
	return user, nil
}

func (s *UserService) List(ctx context.Context, f *types.UserFilter) ([]*models.User, int64, error) {
	f.Normalize()
	users, total, err := s.Users.List(ctx, f)
	if err != nil {
		return nil, 0, errPersistence(err)
	}
	return users, total, nil
}

func (s *UserService) Get(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.Users.FindByID(ctx, id)
	if err != nil {
		return nil, errNotFound("user %d not found", id)
	}
	return user, nil
}

func (s *UserService) Create(ctx context.Context, actor int64, req *types.CreateUserRequest, ip string) (*models.User, error) {
	if s.Users.IsEmailTaken(ctx, req.Email) {
		return nil, errValidation("email %s is already registered", req.Email)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errPersistence(err)
	}
	user := &models.User{
		Name:           req.Name,
		Email:          req.Email,
		Password:       string(hash),
		Role:           req.Role,
		Phone:          req.Phone,
		StandID:        req.StandID,
		CommissionRate: req.CommissionRate,
		IsActive:       true,
	}
	if err := s.Users.Create(ctx, user); err != nil {
		return nil, errPersistence(err)
	}
	s.Audit.Record(ctx, &actor, models.AuditActionCreate, user.TableName(), user.ID, req, ip)
	return user, nil
}

func (s *UserService) Update(ctx context.Context, actor, id int64, req *types.UpdateUserRequest, ip string) (*models.User, error) {
	if _, err := s.Users.FindByID(ctx, id); err != nil {
		return nil, errNotFound("user %d not found", id)
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Role != nil {
		updates["role"] = *req.Role
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.AvatarURL != nil {
		updates["avatar_url"] = *req.AvatarURL
	}
	if req.StandID != nil {
		updates["stand_id"] = *req.StandID
	}
	if req.CommissionRate != nil {
		updates["commission_rate"] = *req.CommissionRate
	}
	if err := s.Users.UpdateByID(ctx, id, updates); err != nil {
		return nil, errPersistence(err)
	}

	s.Audit.Record(ctx, &actor, models.AuditActionUpdate, models.User{}.TableName(), id, updates, ip)
	return s.refetch(ctx, id)
}

func (s *UserService) Delete(ctx context.Context, actor, id int64, ip string) error {
	if _, err := s.Users.FindByID(ctx, id); err != nil {
		return errNotFound("user %d not found", id)
	}
	if err := s.Users.DeleteByID(ctx, id); err != nil {
		return errPersistence(err)
	}
	s.Audit.Record(ctx, &actor, models.AuditActionDelete, models.User{}.TableName(), id, nil, ip)
	return nil
}

func (s *UserService) UpdatePassword(ctx context.Context, userID int64, req *types.UpdatePasswordRequest) error {
	user, err := s.Users.FindByID(ctx, userID)
	if err != nil {
		return errNotFound("user %d not found", userID)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)) != nil {
		return errValidation("current password is incorrect")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return errPersistence(err)
	}
	if err := s.Users.UpdateByID(ctx, userID, map[string]any{"password": string(hash)}); err != nil {
		return errPersistence(err)
	}
	return nil
}

func (s *UserService) ToggleActive(ctx context.Context, actor, id int64, ip string) (*models.User, error) {
	user, err := s.Users.FindByID(ctx, id)
	if err != nil {
		return nil, errNotFound("user %d not found", id)
	}
	if err := s.Users.UpdateByID(ctx, id, map[string]any{"is_active": !user.IsActive}); err != nil {
		return nil, errPersistence(err)
	}
	s.Audit.Record(ctx, &actor, models.AuditActionUpdate, user.TableName(), id,
		map[string]any{"is_active": !user.IsActive}, ip)
	return s.refetch(ctx, id)
}

func (s *UserService) refetch(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.Users.FindByID(ctx, id)
	if err != nil {
		return nil, errPersistence(err)
	}
	return user, nil
}
