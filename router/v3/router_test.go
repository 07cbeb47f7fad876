package v3

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gavv/httpexpect/v2"
	"github.com/gofrs/uuid"
	"github.com/labstack/echo/v4"
	"github.com/leandro-lugaresi/hub"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/citrusworks/shopadmin/model"
	"github.com/citrusworks/shopadmin/repository"
	"github.com/citrusworks/shopadmin/router/extension"
	"github.com/citrusworks/shopadmin/service/rbac"
	"github.com/citrusworks/shopadmin/testutils"
	"github.com/citrusworks/shopadmin/utils/random"
)

const rand = "random"

type env struct {
	Repository repository.Repository
	Hub        *hub.Hub
	RBAC       rbac.RBAC
	Server     *httptest.Server
}

// setup テスト毎に独立したインメモリ環境とサーバーを立ち上げる
func setup(t *testing.T) *env {
	t.Helper()

	h := hub.New()
	repo := testutils.NewTestRepository(h)
	rb := rbac.New(repo, h, zap.NewNop())
	require.NoError(t, rb.Sync(context.Background()))

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = extension.ErrorHandler(zap.NewNop())
	e.Binder = &extension.Binder{}

	handlers := &Handlers{
		RBAC:     rb,
		Repo:     repo,
		Hub:      h,
		Logger:   zap.NewNop(),
		Version:  "version",
		Revision: "revision",
	}
	handlers.Setup(e.Group("/api"))

	server := httptest.NewServer(e)
	t.Cleanup(server.Close)

	return &env{
		Repository: repo,
		Hub:        h,
		RBAC:       rb,
		Server:     server,
	}
}

// R リクエストテスターを作成
func (env *env) R(t *testing.T) *httpexpect.Expect {
	t.Helper()
	return httpexpect.WithConfig(httpexpect.Config{
		BaseURL:  env.Server.URL,
		Reporter: httpexpect.NewAssertReporter(t),
		Printers: []httpexpect.Printer{
			httpexpect.NewCurlPrinter(t),
			httpexpect.NewDebugPrinter(t, true),
		},
		Client: &http.Client{
			Jar:     nil,
			Timeout: time.Second * 30,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	})
}

// CreateUser 指定したロール名のユーザーを必ず作成します(roleNameが空の場合はロール無し)
func (env *env) CreateUser(t *testing.T, userName, roleName string) *model.User {
	t.Helper()
	if userName == rand {
		userName = random.AlphaNumeric(20)
	}
	var roleID uuid.NullUUID
	if len(roleName) > 0 {
		r, err := env.Repository.GetRoleByName(roleName)
		require.NoError(t, err)
		roleID = uuid.NullUUID{UUID: r.ID, Valid: true}
	}
	u, err := env.Repository.CreateUser(repository.CreateUserArgs{Name: userName, RoleID: roleID})
	require.NoError(t, err)
	return u
}

// CreateRole ロールを必ず作成します
func (env *env) CreateRole(t *testing.T, roleName string) *model.Role {
	t.Helper()
	if roleName == rand {
		roleName = "role-" + random.AlphaNumeric(16)
	}
	r, err := env.Repository.CreateRole(repository.CreateRoleArgs{
		Name:        roleName,
		Description: "role for router tests",
		IsActive:    true,
	})
	require.NoError(t, err)
	return r
}

// RightByKey 宣言済みアクセス権を必ず取得します
func (env *env) RightByKey(t *testing.T, key string) *model.AccessRight {
	t.Helper()
	r, err := env.Repository.GetAccessRightByKey(key)
	require.NoError(t, err)
	return r
}

// success 成功エンベロープを検証してdataを返します
func successObject(t *testing.T, res *httpexpect.Response) *httpexpect.Object {
	t.Helper()
	obj := res.JSON().Object()
	obj.Value("success").Boolean().IsTrue()
	return obj.Value("data").Object()
}

func failure(t *testing.T, res *httpexpect.Response) *httpexpect.Object {
	t.Helper()
	obj := res.JSON().Object()
	obj.Value("success").Boolean().IsFalse()
	return obj
}
