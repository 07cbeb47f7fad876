package right

const (
	// BrandIndex ブランド一覧取得権限
	BrandIndex = Key("api.admin.brand.index")
	// BrandShow ブランド取得権限
	BrandShow = Key("api.admin.brand.show")
	// BrandCreate ブランド作成権限
	BrandCreate = Key("api.admin.brand.create")
	// BrandUpdate ブランド更新権限
	BrandUpdate = Key("api.admin.brand.update")
	// BrandDestroy ブランド削除権限
	BrandDestroy = Key("api.admin.brand.destroy")

	// CategoryIndex カテゴリ一覧取得権限
	CategoryIndex = Key("api.admin.category.index")
	// CategoryShow カテゴリ取得権限
	CategoryShow = Key("api.admin.category.show")
	// CategoryCreate カテゴリ作成権限
	CategoryCreate = Key("api.admin.category.create")
	// CategoryUpdate カテゴリ更新権限
	CategoryUpdate = Key("api.admin.category.update")
	// CategoryDestroy カテゴリ削除権限
	CategoryDestroy = Key("api.admin.category.destroy")

	// ProductIndex 商品一覧取得権限
	ProductIndex = Key("api.admin.product.index")
	// ProductShow 商品取得権限
	ProductShow = Key("api.admin.product.show")
	// ProductCreate 商品作成権限
	ProductCreate = Key("api.admin.product.create")
	// ProductUpdate 商品更新権限
	ProductUpdate = Key("api.admin.product.update")
	// ProductDestroy 商品削除権限
	ProductDestroy = Key("api.admin.product.destroy")
	// ProductForceDestroy 商品完全削除権限
	ProductForceDestroy = Key("api.admin.product.forceDestroy")

	// StockIndex 在庫一覧取得権限
	StockIndex = Key("api.admin.stock.index")
	// StockUpdate 在庫更新権限
	StockUpdate = Key("api.admin.stock.update")
)

var catalogDefs = []Definition{
	{BrandIndex, "brand_list", "List brands", ""},
	{BrandShow, "brand_view", "View brand", ""},
	{BrandCreate, "brand_create", "Create brand", ""},
	{BrandUpdate, "brand_edit", "Edit brand", ""},
	{BrandDestroy, "brand_delete", "Delete brand", ""},
	{CategoryIndex, "category_list", "List categories", ""},
	{CategoryShow, "category_view", "View category", ""},
	{CategoryCreate, "category_create", "Create category", ""},
	{CategoryUpdate, "category_edit", "Edit category", ""},
	{CategoryDestroy, "category_delete", "Delete category", "Removes the category. Products keep their remaining categories."},
	{ProductIndex, "product_list", "List products", ""},
	{ProductShow, "product_view", "View product", ""},
	{ProductCreate, "product_create", "Create product", ""},
	{ProductUpdate, "product_edit", "Edit product", ""},
	{ProductDestroy, "product_delete", "Delete product", "Soft-deletes the product. It disappears from the storefront but stays recoverable."},
	{ProductForceDestroy, "product_force_delete", "Permanently delete product", "Removes a soft-deleted product and its images for good. Not recoverable."},
	{StockIndex, "stock_list", "List stock levels", ""},
	{StockUpdate, "stock_edit", "Adjust stock levels", ""},
}
