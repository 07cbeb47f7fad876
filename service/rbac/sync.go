package rbac

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"

	"github.com/citrusworks/shopadmin/repository"
	"github.com/citrusworks/shopadmin/service/rbac/right"
	"github.com/citrusworks/shopadmin/service/rbac/role"
)

// syncLockName デプロイの多重起動が同期を並走させないためのMySQLアドバイザリロック名
const syncLockName = "shopadmin:rbac:sync"

// Sync implements RBAC interface.
func (m *manager) Sync(_ context.Context) error {
	return m.repo.WithExclusiveLock(syncLockName, m.sync)
}

func (m *manager) sync() error {
	defs := right.Definitions()

	// 宣言済みアクセス権のアップサート
	// 不正な宣言はその1件だけを落とし、残りは投入を続ける
	ids := make(map[right.Key]uuid.UUID, len(defs))
	invalid := make([]string, 0)
	for _, d := range defs {
		r, err := m.repo.DeclareAccessRight(repository.DeclareAccessRightArgs{
			OperationKey:     d.OperationKey.Name(),
			ShortKey:         d.ShortKey,
			ShortDescription: d.ShortDescription,
			Details:          d.Details,
		})
		if err != nil {
			if repository.IsArgError(err) {
				m.logger.Error("skipping invalid right declaration",
					zap.String("operationKey", d.OperationKey.Name()),
					zap.Error(err))
				invalid = append(invalid, d.OperationKey.Name())
				continue
			}
			return fmt.Errorf("failed to declare %s: %w", d.OperationKey, err)
		}
		ids[d.OperationKey] = r.ID
	}

	// 初期ロールの確保と保有権の付与
	for _, b := range role.BootstrapRoles() {
		r, err := m.repo.GetRoleByName(b.Name)
		if errors.Is(err, repository.ErrNotFound) {
			r, err = m.repo.CreateRole(repository.CreateRoleArgs{
				Name:        b.Name,
				Description: b.Description,
				IsActive:    true,
			})
		}
		if err != nil {
			return fmt.Errorf("failed to ensure role %s: %w", b.Name, err)
		}

		rightIDs := make([]uuid.UUID, 0, len(ids))
		for _, d := range defs {
			id, ok := ids[d.OperationKey]
			if ok && b.Includes(d.OperationKey) {
				rightIDs = append(rightIDs, id)
			}
		}
		if err := m.repo.GrantRights(r.ID, rightIDs); err != nil {
			return fmt.Errorf("failed to grant rights to role %s: %w", b.Name, err)
		}
		m.cache.Forget(r.ID)
	}

	if len(invalid) > 0 {
		return fmt.Errorf("sync skipped invalid right declarations: %s", strings.Join(invalid, ", "))
	}
	return nil
}
