package item

// Log Messages
const (
	LogMsgCatalogSynced = "Item catalog synced to database"
)
