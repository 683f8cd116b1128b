package repoargs

type RepositoryName string

const (
	UserRepoName       RepositoryName = "user"
	CatalogRepoName    RepositoryName = "catalog"
	OrderRepoName      RepositoryName = "order"
	WalletRepoName     RepositoryName = "wallet"
	DeliveryRepoName   RepositoryName = "delivery"
	PickupShopRepoName RepositoryName = "pickup_shop"
	MessagingRepoName  RepositoryName = "messaging"
	ModerationRepoName RepositoryName = "moderation"
)

// Page параметры постраничной выборки.
type Page struct {
	Limit  uint
	Offset uint
}
