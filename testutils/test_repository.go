// Package testutils DBを使わないテスト用のインメモリリポジトリ実装
package testutils

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/gofrs/uuid"
	"github.com/leandro-lugaresi/hub"

	"github.com/citrusworks/shopadmin/event"
	"github.com/citrusworks/shopadmin/model"
	"github.com/citrusworks/shopadmin/repository"
	"github.com/citrusworks/shopadmin/utils/validator"
)

func validateFeatureName(name string) error {
	if err := validator.ValidateVar(name, validator.FeatureNameRuleRequired...); err != nil {
		return repository.ArgError("name", err.Error())
	}
	return nil
}

// TestRepository インメモリリポジトリ実装
//
// gorm実装と同じエラー・イベントセマンティクスを再現します。
type TestRepository struct {
	hub *hub.Hub

	mu       sync.RWMutex
	rights   map[uuid.UUID]model.AccessRight
	roles    map[uuid.UUID]model.Role
	grants   map[uuid.UUID]map[uuid.UUID]struct{}
	users    map[uuid.UUID]model.User
	features map[string]model.FeatureFlag

	locksMu sync.Mutex
	locks   map[string]*sync.Mutex
}

// NewTestRepository インメモリリポジトリを生成します
func NewTestRepository(h *hub.Hub) *TestRepository {
	return &TestRepository{
		hub:      h,
		rights:   map[uuid.UUID]model.AccessRight{},
		roles:    map[uuid.UUID]model.Role{},
		grants:   map[uuid.UUID]map[uuid.UUID]struct{}{},
		users:    map[uuid.UUID]model.User{},
		features: map[string]model.FeatureFlag{},
		locks:    map[string]*sync.Mutex{},
	}
}

// WithExclusiveLock implements Repository interface.
func (repo *TestRepository) WithExclusiveLock(name string, fn func() error) error {
	repo.locksMu.Lock()
	l, ok := repo.locks[name]
	if !ok {
		l = &sync.Mutex{}
		repo.locks[name] = l
	}
	repo.locksMu.Unlock()

	l.Lock()
	defer l.Unlock()
	return fn()
}

func (repo *TestRepository) publish(messages ...hub.Message) {
	if repo.hub == nil {
		return
	}
	for _, m := range messages {
		repo.hub.Publish(m)
	}
}

// DeclareAccessRight implements AccessRightRepository interface.
func (repo *TestRepository) DeclareAccessRight(args repository.DeclareAccessRightArgs) (*model.AccessRight, error) {
	if err := args.Validate(); err != nil {
		return nil, repository.ArgError("args", err.Error())
	}

	repo.mu.Lock()
	var right model.AccessRight
	var found bool
	for _, r := range repo.rights {
		if r.OperationKey == args.OperationKey {
			right = r
			found = true
			break
		}
	}

	if !found {
		for _, r := range repo.rights {
			if r.ShortKey == args.ShortKey {
				repo.mu.Unlock()
				return nil, repository.ArgError("shortKey", "shortKey is already used by another operation")
			}
		}
		right = model.AccessRight{
			ID:               uuid.Must(uuid.NewV4()),
			OperationKey:     args.OperationKey,
			ShortKey:         args.ShortKey,
			ShortDescription: args.ShortDescription,
			Details:          args.Details,
			CreatedAt:        time.Now(),
			UpdatedAt:        time.Now(),
		}
	} else {
		if right.ShortKey != args.ShortKey {
			for _, g := range repo.grants {
				if _, ok := g[right.ID]; ok {
					repo.mu.Unlock()
					return nil, repository.ArgError("shortKey", "shortKey is immutable while the right is granted")
				}
			}
			for _, r := range repo.rights {
				if r.ID != right.ID && r.ShortKey == args.ShortKey {
					repo.mu.Unlock()
					return nil, repository.ArgError("shortKey", "shortKey is already used by another operation")
				}
			}
			right.ShortKey = args.ShortKey
		}
		right.ShortDescription = args.ShortDescription
		right.Details = args.Details
		right.UpdatedAt = time.Now()
	}
	repo.rights[right.ID] = right
	repo.mu.Unlock()

	repo.publish(hub.Message{
		Name: event.AccessRightUpdated,
		Fields: hub.Fields{
			"right_id":      right.ID,
			"operation_key": right.OperationKey,
		},
	})
	return &right, nil
}

// UpdateAccessRight implements AccessRightRepository interface.
func (repo *TestRepository) UpdateAccessRight(id uuid.UUID, args repository.UpdateAccessRightArgs) error {
	if id == uuid.Nil {
		return repository.ErrNilID
	}

	repo.mu.Lock()
	right, ok := repo.rights[id]
	if !ok {
		repo.mu.Unlock()
		return repository.ErrNotFound
	}

	changed := false
	if args.ShortDescription.Valid {
		if err := validator.ValidateVar(args.ShortDescription.String, validator.ShortDescriptionRuleRequired...); err != nil {
			repo.mu.Unlock()
			return repository.ArgError("args.ShortDescription", err.Error())
		}
		right.ShortDescription = args.ShortDescription.String
		changed = true
	}
	if args.Details.Valid {
		if err := validator.ValidateVar(args.Details.String, validator.DetailsRule...); err != nil {
			repo.mu.Unlock()
			return repository.ArgError("args.Details", err.Error())
		}
		right.Details = args.Details.String
		changed = true
	}
	if changed {
		right.UpdatedAt = time.Now()
		repo.rights[id] = right
	}
	repo.mu.Unlock()

	if changed {
		repo.publish(hub.Message{
			Name: event.AccessRightUpdated,
			Fields: hub.Fields{
				"right_id":      right.ID,
				"operation_key": right.OperationKey,
			},
		})
	}
	return nil
}

// GetAccessRight implements AccessRightRepository interface.
func (repo *TestRepository) GetAccessRight(id uuid.UUID) (*model.AccessRight, error) {
	if id == uuid.Nil {
		return nil, repository.ErrNilID
	}
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	right, ok := repo.rights[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &right, nil
}

// GetAccessRightByKey implements AccessRightRepository interface.
func (repo *TestRepository) GetAccessRightByKey(key string) (*model.AccessRight, error) {
	if len(key) == 0 {
		return nil, repository.ErrNotFound
	}
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	for _, right := range repo.rights {
		if right.OperationKey == key || right.ShortKey == key {
			r := right
			return &r, nil
		}
	}
	return nil, repository.ErrNotFound
}

// GetAccessRights implements AccessRightRepository interface.
func (repo *TestRepository) GetAccessRights(q repository.AccessRightsQuery) ([]*model.AccessRight, int64, error) {
	less, err := accessRightLess(q.SortBy)
	if err != nil {
		return nil, 0, err
	}

	repo.mu.RLock()
	matched := make([]model.AccessRight, 0, len(repo.rights))
	for _, right := range repo.rights {
		if len(q.Filter) > 0 &&
			!strings.Contains(right.OperationKey, q.Filter) &&
			!strings.Contains(right.ShortKey, q.Filter) &&
			!strings.Contains(right.ShortDescription, q.Filter) {
			continue
		}
		matched = append(matched, right)
	}
	repo.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		if q.Descending {
			return less(matched[j], matched[i])
		}
		return less(matched[i], matched[j])
	})

	total := int64(len(matched))
	matched = paginate(matched, q.Page, q.PerPage)
	result := make([]*model.AccessRight, len(matched))
	for i := range matched {
		result[i] = &matched[i]
	}
	return result, total, nil
}

func accessRightLess(sortBy string) (func(a, b model.AccessRight) bool, error) {
	switch sortBy {
	case "", "operationKey":
		return func(a, b model.AccessRight) bool { return a.OperationKey < b.OperationKey }, nil
	case "shortKey":
		return func(a, b model.AccessRight) bool { return a.ShortKey < b.ShortKey }, nil
	case "shortDescription":
		return func(a, b model.AccessRight) bool { return a.ShortDescription < b.ShortDescription }, nil
	case "details":
		return func(a, b model.AccessRight) bool { return a.Details < b.Details }, nil
	case "createdAt":
		return func(a, b model.AccessRight) bool { return a.CreatedAt.Before(b.CreatedAt) }, nil
	case "updatedAt":
		return func(a, b model.AccessRight) bool { return a.UpdatedAt.Before(b.UpdatedAt) }, nil
	default:
		return nil, repository.ArgError("sort", "unknown sort column: "+sortBy)
	}
}

func paginate[T any](s []T, page, perPage int) []T {
	if perPage <= 0 {
		perPage = 15
	} else if perPage > 100 {
		perPage = 100
	}
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * perPage
	if offset >= len(s) {
		return []T{}
	}
	end := offset + perPage
	if end > len(s) {
		end = len(s)
	}
	return s[offset:end]
}

// DeleteAccessRight implements AccessRightRepository interface.
func (repo *TestRepository) DeleteAccessRight(id uuid.UUID) error {
	if id == uuid.Nil {
		return repository.ErrNilID
	}

	repo.mu.Lock()
	right, ok := repo.rights[id]
	if !ok {
		repo.mu.Unlock()
		return repository.ErrNotFound
	}
	for _, g := range repo.grants {
		if _, ok := g[id]; ok {
			repo.mu.Unlock()
			return repository.ErrStillGranted
		}
	}
	delete(repo.rights, id)
	repo.mu.Unlock()

	repo.publish(hub.Message{
		Name: event.AccessRightDeleted,
		Fields: hub.Fields{
			"right_id":      right.ID,
			"operation_key": right.OperationKey,
		},
	})
	return nil
}

// CreateRole implements RoleRepository interface.
func (repo *TestRepository) CreateRole(args repository.CreateRoleArgs) (*model.Role, error) {
	if err := args.Validate(); err != nil {
		return nil, repository.ArgError("args", err.Error())
	}

	repo.mu.Lock()
	for _, r := range repo.roles {
		if r.Name == args.Name {
			repo.mu.Unlock()
			return nil, repository.ErrAlreadyExists
		}
	}
	role := model.Role{
		ID:          uuid.Must(uuid.NewV4()),
		Name:        args.Name,
		Description: args.Description,
		IsActive:    args.IsActive,
		IsDefault:   args.IsDefault,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	repo.roles[role.ID] = role
	repo.grants[role.ID] = map[uuid.UUID]struct{}{}
	repo.mu.Unlock()

	repo.publish(hub.Message{
		Name: event.RoleCreated,
		Fields: hub.Fields{
			"role_id": role.ID,
			"role":    &role,
		},
	})
	return &role, nil
}

// UpdateRole implements RoleRepository interface.
func (repo *TestRepository) UpdateRole(id uuid.UUID, args repository.UpdateRoleArgs) error {
	if id == uuid.Nil {
		return repository.ErrNilID
	}

	repo.mu.Lock()
	role, ok := repo.roles[id]
	if !ok {
		repo.mu.Unlock()
		return repository.ErrNotFound
	}

	changed := false
	if args.Name.Valid && args.Name.String != role.Name {
		if err := validator.ValidateVar(args.Name.String, validator.RoleNameRuleRequired...); err != nil {
			repo.mu.Unlock()
			return repository.ArgError("args.Name", err.Error())
		}
		for _, r := range repo.roles {
			if r.Name == args.Name.String {
				repo.mu.Unlock()
				return repository.ErrAlreadyExists
			}
		}
		role.Name = args.Name.String
		changed = true
	}
	if args.Description.Valid {
		if err := validator.ValidateVar(args.Description.String, validator.RoleDescriptionRuleRequired...); err != nil {
			repo.mu.Unlock()
			return repository.ArgError("args.Description", err.Error())
		}
		role.Description = args.Description.String
		changed = true
	}
	if args.IsActive.Valid {
		role.IsActive = args.IsActive.Bool
		changed = true
	}
	if args.IsDefault.Valid {
		role.IsDefault = args.IsDefault.Bool
		changed = true
	}
	if changed {
		role.UpdatedAt = time.Now()
		repo.roles[id] = role
	}
	repo.mu.Unlock()

	if changed {
		repo.publish(hub.Message{
			Name: event.RoleUpdated,
			Fields: hub.Fields{
				"role_id": id,
			},
		})
	}
	return nil
}

// GetRole implements RoleRepository interface.
func (repo *TestRepository) GetRole(id uuid.UUID) (*model.Role, error) {
	if id == uuid.Nil {
		return nil, repository.ErrNilID
	}
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	role, ok := repo.roles[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	role.Grants = repo.grantsOf(id)
	return &role, nil
}

// GetRoleByName implements RoleRepository interface.
func (repo *TestRepository) GetRoleByName(name string) (*model.Role, error) {
	if len(name) == 0 {
		return nil, repository.ErrNotFound
	}
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	for _, role := range repo.roles {
		if role.Name == name {
			role.Grants = repo.grantsOf(role.ID)
			return &role, nil
		}
	}
	return nil, repository.ErrNotFound
}

// grantsOf 呼び出し側がrepo.muを保持していること
func (repo *TestRepository) grantsOf(roleID uuid.UUID) []model.RoleGrant {
	grants := make([]model.RoleGrant, 0, len(repo.grants[roleID]))
	for rightID := range repo.grants[roleID] {
		grants = append(grants, model.RoleGrant{RoleID: roleID, RightID: rightID})
	}
	return grants
}

// GetRoles implements RoleRepository interface.
func (repo *TestRepository) GetRoles(q repository.RolesQuery) ([]*repository.RoleDetail, int64, error) {
	less, err := roleLess(q.SortBy)
	if err != nil {
		return nil, 0, err
	}

	repo.mu.RLock()
	matched := make([]repository.RoleDetail, 0, len(repo.roles))
	for _, role := range repo.roles {
		if len(q.Filter) > 0 &&
			!strings.Contains(role.Name, q.Filter) &&
			!strings.Contains(role.Description, q.Filter) {
			continue
		}
		role.Grants = repo.grantsOf(role.ID)
		detail := repository.RoleDetail{Role: role}
		for _, u := range repo.users {
			if u.RoleID.Valid && u.RoleID.UUID == role.ID {
				detail.UserCount++
				if q.WithUsers {
					user := u
					detail.Users = append(detail.Users, &user)
				}
			}
		}
		matched = append(matched, detail)
	}
	repo.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		if q.Descending {
			return less(matched[j].Role, matched[i].Role)
		}
		return less(matched[i].Role, matched[j].Role)
	})

	total := int64(len(matched))
	matched = paginate(matched, q.Page, q.PerPage)
	result := make([]*repository.RoleDetail, len(matched))
	for i := range matched {
		result[i] = &matched[i]
	}
	return result, total, nil
}

func roleLess(sortBy string) (func(a, b model.Role) bool, error) {
	switch sortBy {
	case "", "name":
		return func(a, b model.Role) bool { return a.Name < b.Name }, nil
	case "description":
		return func(a, b model.Role) bool { return a.Description < b.Description }, nil
	case "isActive":
		return func(a, b model.Role) bool { return !a.IsActive && b.IsActive }, nil
	case "isDefault":
		return func(a, b model.Role) bool { return !a.IsDefault && b.IsDefault }, nil
	case "createdAt":
		return func(a, b model.Role) bool { return a.CreatedAt.Before(b.CreatedAt) }, nil
	case "updatedAt":
		return func(a, b model.Role) bool { return a.UpdatedAt.Before(b.UpdatedAt) }, nil
	default:
		return nil, repository.ArgError("sort", "unknown sort column: "+sortBy)
	}
}

// DeleteRole implements RoleRepository interface.
func (repo *TestRepository) DeleteRole(id uuid.UUID) error {
	if id == uuid.Nil {
		return repository.ErrNilID
	}

	repo.mu.Lock()
	if _, ok := repo.roles[id]; !ok {
		repo.mu.Unlock()
		return repository.ErrNotFound
	}
	for _, u := range repo.users {
		if u.RoleID.Valid && u.RoleID.UUID == id {
			repo.mu.Unlock()
			return repository.ErrRoleInUse
		}
	}
	delete(repo.roles, id)
	delete(repo.grants, id)
	repo.mu.Unlock()

	repo.publish(hub.Message{
		Name: event.RoleDeleted,
		Fields: hub.Fields{
			"role_id": id,
		},
	})
	return nil
}

// GrantRight implements RoleRepository interface.
func (repo *TestRepository) GrantRight(roleID, rightID uuid.UUID) error {
	if roleID == uuid.Nil || rightID == uuid.Nil {
		return repository.ErrNilID
	}

	repo.mu.Lock()
	if _, ok := repo.roles[roleID]; !ok {
		repo.mu.Unlock()
		return repository.ErrNotFound
	}
	if _, ok := repo.rights[rightID]; !ok {
		repo.mu.Unlock()
		return repository.ErrNotFound
	}
	if _, held := repo.grants[roleID][rightID]; held {
		repo.mu.Unlock()
		return nil
	}
	repo.grants[roleID][rightID] = struct{}{}
	repo.mu.Unlock()

	repo.publish(hub.Message{
		Name: event.RoleUpdated,
		Fields: hub.Fields{
			"role_id": roleID,
		},
	})
	return nil
}

// GrantRights implements RoleRepository interface.
func (repo *TestRepository) GrantRights(roleID uuid.UUID, rightIDs []uuid.UUID) error {
	if roleID == uuid.Nil {
		return repository.ErrNilID
	}

	repo.mu.Lock()
	if _, ok := repo.roles[roleID]; !ok {
		repo.mu.Unlock()
		return repository.ErrNotFound
	}
	added := false
	for _, rightID := range rightIDs {
		if _, held := repo.grants[roleID][rightID]; !held {
			repo.grants[roleID][rightID] = struct{}{}
			added = true
		}
	}
	repo.mu.Unlock()

	if added {
		repo.publish(hub.Message{
			Name: event.RoleUpdated,
			Fields: hub.Fields{
				"role_id": roleID,
			},
		})
	}
	return nil
}

// RevokeRight implements RoleRepository interface.
func (repo *TestRepository) RevokeRight(roleID, rightID uuid.UUID) error {
	if roleID == uuid.Nil || rightID == uuid.Nil {
		return repository.ErrNilID
	}

	repo.mu.Lock()
	if _, ok := repo.roles[roleID]; !ok {
		repo.mu.Unlock()
		return repository.ErrNotFound
	}
	if _, ok := repo.rights[rightID]; !ok {
		repo.mu.Unlock()
		return repository.ErrNotFound
	}
	_, held := repo.grants[roleID][rightID]
	delete(repo.grants[roleID], rightID)
	repo.mu.Unlock()

	if held {
		repo.publish(hub.Message{
			Name: event.RoleUpdated,
			Fields: hub.Fields{
				"role_id": roleID,
			},
		})
	}
	return nil
}

// GetGrantedRights implements RoleRepository interface.
func (repo *TestRepository) GetGrantedRights(roleID uuid.UUID) ([]*model.AccessRight, error) {
	if roleID == uuid.Nil {
		return nil, repository.ErrNilID
	}
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	if _, ok := repo.roles[roleID]; !ok {
		return nil, repository.ErrNotFound
	}
	rights := make([]*model.AccessRight, 0, len(repo.grants[roleID]))
	for rightID := range repo.grants[roleID] {
		right := repo.rights[rightID]
		rights = append(rights, &right)
	}
	return rights, nil
}

// CreateUser implements UserRepository interface.
func (repo *TestRepository) CreateUser(args repository.CreateUserArgs) (*model.User, error) {
	if err := args.Validate(); err != nil {
		return nil, repository.ArgError("args", err.Error())
	}

	repo.mu.Lock()
	for _, u := range repo.users {
		if u.Name == args.Name {
			repo.mu.Unlock()
			return nil, repository.ErrAlreadyExists
		}
	}
	if args.RoleID.Valid {
		if _, ok := repo.roles[args.RoleID.UUID]; !ok {
			repo.mu.Unlock()
			return nil, repository.ErrNotFound
		}
	}
	user := model.User{
		ID:          uuid.Must(uuid.NewV4()),
		Name:        args.Name,
		DisplayName: args.DisplayName,
		RoleID:      args.RoleID,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if len(user.DisplayName) == 0 {
		user.DisplayName = user.Name
	}
	repo.users[user.ID] = user
	repo.mu.Unlock()

	repo.publish(hub.Message{
		Name: event.UserCreated,
		Fields: hub.Fields{
			"user_id": user.ID,
			"user":    &user,
		},
	})
	return &user, nil
}

// GetUser implements UserRepository interface.
func (repo *TestRepository) GetUser(id uuid.UUID) (*model.User, error) {
	if id == uuid.Nil {
		return nil, repository.ErrNilID
	}
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	user, ok := repo.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &user, nil
}

// GetUserByName implements UserRepository interface.
func (repo *TestRepository) GetUserByName(name string) (*model.User, error) {
	if len(name) == 0 {
		return nil, repository.ErrNotFound
	}
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	for _, user := range repo.users {
		if user.Name == name {
			u := user
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

// ChangeUserRole implements UserRepository interface.
func (repo *TestRepository) ChangeUserRole(userID uuid.UUID, roleID uuid.NullUUID) error {
	if userID == uuid.Nil {
		return repository.ErrNilID
	}

	repo.mu.Lock()
	user, ok := repo.users[userID]
	if !ok {
		repo.mu.Unlock()
		return repository.ErrNotFound
	}
	if roleID.Valid {
		if _, ok := repo.roles[roleID.UUID]; !ok {
			repo.mu.Unlock()
			return repository.ErrNotFound
		}
	}
	if user.RoleID == roleID {
		repo.mu.Unlock()
		return nil
	}
	user.RoleID = roleID
	user.UpdatedAt = time.Now()
	repo.users[userID] = user
	repo.mu.Unlock()

	repo.publish(hub.Message{
		Name: event.UserRoleChanged,
		Fields: hub.Fields{
			"user_id": userID,
			"role_id": roleID,
		},
	})
	return nil
}

// CountUsersByRole implements UserRepository interface.
func (repo *TestRepository) CountUsersByRole(roleID uuid.UUID) (int64, error) {
	if roleID == uuid.Nil {
		return 0, repository.ErrNilID
	}
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	var count int64
	for _, u := range repo.users {
		if u.RoleID.Valid && u.RoleID.UUID == roleID {
			count++
		}
	}
	return count, nil
}

// GetFeatureFlags implements FeatureFlagRepository interface.
func (repo *TestRepository) GetFeatureFlags() ([]*model.FeatureFlag, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	flags := make([]*model.FeatureFlag, 0, len(repo.features))
	for _, f := range repo.features {
		flag := f
		flags = append(flags, &flag)
	}
	sort.Slice(flags, func(i, j int) bool { return flags[i].Name < flags[j].Name })
	return flags, nil
}

// GetEnabledFeatures implements FeatureFlagRepository interface.
func (repo *TestRepository) GetEnabledFeatures() ([]string, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	names := make([]string, 0, len(repo.features))
	for _, f := range repo.features {
		if f.Enabled {
			names = append(names, f.Name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// SetFeatureFlag implements FeatureFlagRepository interface.
func (repo *TestRepository) SetFeatureFlag(name string, enabled bool) error {
	if err := validateFeatureName(name); err != nil {
		return err
	}

	repo.mu.Lock()
	repo.features[name] = model.FeatureFlag{Name: name, Enabled: enabled, UpdatedAt: time.Now()}
	repo.mu.Unlock()

	repo.publish(hub.Message{
		Name: event.FeatureFlagUpdated,
		Fields: hub.Fields{
			"name":    name,
			"enabled": enabled,
		},
	})
	return nil
}
