package rbac

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid"
	"github.com/leandro-lugaresi/hub"
	"github.com/motoki317/sc"
	"go.uber.org/zap"

	"github.com/citrusworks/shopadmin/event"
	"github.com/citrusworks/shopadmin/repository"
	"github.com/citrusworks/shopadmin/utils/set"
)

const (
	cacheSize = 256
	cacheTTL  = 5 * time.Minute
)

// grantSet ロール1つ分の保有権スナップショット 構築後は不変
type grantSet struct {
	active bool
	keys   set.Set[string]
}

type manager struct {
	repo   repository.Repository
	hub    *hub.Hub
	logger *zap.Logger

	cache *sc.Cache[uuid.UUID, *grantSet]
}

// New アクセス制御サービスを作成して起動します
func New(repo repository.Repository, h *hub.Hub, logger *zap.Logger) RBAC {
	m := &manager{
		repo:   repo,
		hub:    h,
		logger: logger.Named("rbac"),
	}
	m.cache = sc.NewMust(m.loadGrantSet, cacheTTL, cacheTTL*2, sc.With2QBackend(cacheSize))

	sub := h.Subscribe(32,
		event.RoleUpdated,
		event.RoleDeleted,
		event.AccessRightUpdated,
		event.AccessRightDeleted,
	)
	go func() {
		for msg := range sub.Receiver {
			switch msg.Topic() {
			case event.RoleUpdated, event.RoleDeleted:
				if roleID, ok := msg.Fields["role_id"].(uuid.UUID); ok {
					m.cache.Forget(roleID)
				}
			case event.AccessRightUpdated, event.AccessRightDeleted:
				// どのロールが保有しているか分からないため全て破棄する
				m.cache.Purge()
			}
		}
	}()
	return m
}

// loadGrantSet ロールの保有権スナップショットを構築します
func (m *manager) loadGrantSet(_ context.Context, roleID uuid.UUID) (*grantSet, error) {
	r, err := m.repo.GetRole(roleID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to GetRole: %w", err)
	}
	if !r.IsActive {
		return &grantSet{active: false}, nil
	}

	rights, err := m.repo.GetGrantedRights(roleID)
	if err != nil {
		return nil, fmt.Errorf("failed to GetGrantedRights: %w", err)
	}

	keys := set.New[string]()
	for _, right := range rights {
		keys.Add(right.OperationKey)
		keys.Add(right.ShortKey)
	}
	return &grantSet{active: true, keys: keys}, nil
}

// IsAuthorized implements RBAC interface.
func (m *manager) IsAuthorized(ctx context.Context, roleID uuid.UUID, key string) (bool, error) {
	if roleID == uuid.Nil {
		return false, repository.ErrNilID
	}
	if len(key) == 0 {
		return false, repository.ArgError("key", "key is required")
	}

	gs, err := m.cache.Get(ctx, roleID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return gs.active && gs.keys.Contains(key), nil
}

// GrantRight implements RBAC interface.
func (m *manager) GrantRight(_ context.Context, roleID, rightID uuid.UUID) error {
	if err := m.repo.GrantRight(roleID, rightID); err != nil {
		return err
	}
	// 自分の書き込みを直後の判定に反映させる
	m.cache.Forget(roleID)
	return nil
}

// RevokeRight implements RBAC interface.
func (m *manager) RevokeRight(_ context.Context, roleID, rightID uuid.UUID) error {
	if err := m.repo.RevokeRight(roleID, rightID); err != nil {
		return err
	}
	m.cache.Forget(roleID)
	return nil
}

// GetGrants implements RBAC interface.
func (m *manager) GetGrants(_ context.Context, roleID uuid.UUID) ([]GrantEntry, error) {
	rights, err := m.repo.GetGrantedRights(roleID)
	if err != nil {
		return nil, err
	}
	entries := make([]GrantEntry, len(rights))
	for i, right := range rights {
		entries[i] = GrantEntry{
			OperationKey: right.OperationKey,
			ShortKey:     right.ShortKey,
		}
	}
	return entries, nil
}

// MakeSnapshot implements RBAC interface.
func (m *manager) MakeSnapshot(ctx context.Context, roleID uuid.NullUUID) (*Snapshot, error) {
	features, err := m.repo.GetEnabledFeatures()
	if err != nil {
		return nil, fmt.Errorf("failed to GetEnabledFeatures: %w", err)
	}

	snapshot := &Snapshot{
		Grants:          []GrantEntry{},
		EnabledFeatures: features,
	}
	if !roleID.Valid {
		return snapshot, nil
	}

	grants, err := m.GetGrants(ctx, roleID.UUID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return snapshot, nil
		}
		return nil, err
	}
	snapshot.Grants = grants
	return snapshot, nil
}
