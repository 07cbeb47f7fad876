package right

const (
	// PostIndex 記事一覧取得権限
	PostIndex = Key("api.admin.post.index")
	// PostShow 記事取得権限
	PostShow = Key("api.admin.post.show")
	// PostCreate 記事作成権限
	PostCreate = Key("api.admin.post.create")
	// PostUpdate 記事更新権限
	PostUpdate = Key("api.admin.post.update")
	// PostDestroy 記事削除権限
	PostDestroy = Key("api.admin.post.destroy")
	// PostForceDestroy 記事完全削除権限
	PostForceDestroy = Key("api.admin.post.forceDestroy")

	// ProjectIndex プロジェクト一覧取得権限
	ProjectIndex = Key("api.admin.project.index")
	// ProjectShow プロジェクト取得権限
	ProjectShow = Key("api.admin.project.show")
	// ProjectCreate プロジェクト作成権限
	ProjectCreate = Key("api.admin.project.create")
	// ProjectUpdate プロジェクト更新権限
	ProjectUpdate = Key("api.admin.project.update")
	// ProjectDestroy プロジェクト削除権限
	ProjectDestroy = Key("api.admin.project.destroy")

	// CommentIndex コメント一覧取得権限
	CommentIndex = Key("api.admin.comment.index")
	// CommentUpdate コメント更新権限
	CommentUpdate = Key("api.admin.comment.update")
	// CommentDestroy コメント削除権限
	CommentDestroy = Key("api.admin.comment.destroy")

	// ReviewIndex レビュー一覧取得権限
	ReviewIndex = Key("api.admin.review.index")
	// ReviewUpdate レビュー更新権限
	ReviewUpdate = Key("api.admin.review.update")
	// ReviewDestroy レビュー削除権限
	ReviewDestroy = Key("api.admin.review.destroy")
)

var contentDefs = []Definition{
	{PostIndex, "post_list", "List posts", ""},
	{PostShow, "post_view", "View post", ""},
	{PostCreate, "post_create", "Create post", ""},
	{PostUpdate, "post_edit", "Edit post", ""},
	{PostDestroy, "post_delete", "Delete post", ""},
	{PostForceDestroy, "post_force_delete", "Permanently delete post", "Removes a soft-deleted post and its attachments for good. Not recoverable."},
	{ProjectIndex, "project_list", "List projects", ""},
	{ProjectShow, "project_view", "View project", ""},
	{ProjectCreate, "project_create", "Create project", ""},
	{ProjectUpdate, "project_edit", "Edit project", ""},
	{ProjectDestroy, "project_delete", "Delete project", ""},
	{CommentIndex, "comment_list", "List comments", ""},
	{CommentUpdate, "comment_edit", "Moderate comment", ""},
	{CommentDestroy, "comment_delete", "Delete comment", ""},
	{ReviewIndex, "review_list", "List reviews", ""},
	{ReviewUpdate, "review_edit", "Moderate review", ""},
	{ReviewDestroy, "review_delete", "Delete review", ""},
}
