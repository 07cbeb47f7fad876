package right

const (
	// OrderIndex 注文一覧取得権限
	OrderIndex = Key("api.admin.order.index")
	// OrderShow 注文取得権限
	OrderShow = Key("api.admin.order.show")
	// OrderUpdate 注文更新権限
	OrderUpdate = Key("api.admin.order.update")
	// OrderDestroy 注文削除権限
	OrderDestroy = Key("api.admin.order.destroy")

	// PaymentIndex 支払い一覧取得権限
	PaymentIndex = Key("api.admin.payment.index")
	// PaymentShow 支払い取得権限
	PaymentShow = Key("api.admin.payment.show")
	// PaymentUpdate 支払い更新権限
	PaymentUpdate = Key("api.admin.payment.update")

	// CouponIndex クーポン一覧取得権限
	CouponIndex = Key("api.admin.coupon.index")
	// CouponShow クーポン取得権限
	CouponShow = Key("api.admin.coupon.show")
	// CouponCreate クーポン作成権限
	CouponCreate = Key("api.admin.coupon.create")
	// CouponUpdate クーポン更新権限
	CouponUpdate = Key("api.admin.coupon.update")
	// CouponDestroy クーポン削除権限
	CouponDestroy = Key("api.admin.coupon.destroy")
)

var commerceDefs = []Definition{
	{OrderIndex, "order_list", "List orders", ""},
	{OrderShow, "order_view", "View order", ""},
	{OrderUpdate, "order_edit", "Edit order", ""},
	{OrderDestroy, "order_delete", "Delete order", "Cancels and removes the order record. Captured payments are left untouched."},
	{PaymentIndex, "payment_list", "List payments", ""},
	{PaymentShow, "payment_view", "View payment", ""},
	{PaymentUpdate, "payment_edit", "Edit payment status", ""},
	{CouponIndex, "coupon_list", "List coupons", ""},
	{CouponShow, "coupon_view", "View coupon", ""},
	{CouponCreate, "coupon_create", "Create coupon", ""},
	{CouponUpdate, "coupon_edit", "Edit coupon", ""},
	{CouponDestroy, "coupon_delete", "Delete coupon", "Deletes the coupon. Orders that already redeemed it keep their discount."},
}
