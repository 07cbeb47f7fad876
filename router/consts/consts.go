package consts

const (
	KeyUser   = "user"
	KeyUserID = "userID"
)

const (
	// HeaderForwardedUser 認証プロキシが設定する認証済みユーザー名ヘッダー
	HeaderForwardedUser = "X-Forwarded-User"
	// HeaderVersion サーバーバージョンヘッダー
	HeaderVersion = "X-SHOPADMIN-VERSION"
)
