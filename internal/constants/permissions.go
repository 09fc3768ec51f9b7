package constants

const (
	ViewData       = "view_data"
	StockAdd       = "stock_add"
	StockAllocate  = "stock_allocate"
	RequestFulfill = "request_fulfill"
	ManageUsers    = "manage_users"
)
