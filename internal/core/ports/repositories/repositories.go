package repositories

// RepositoryProvider bundles the repository implementations handed to the
// service layer. There is a single entity today; further repositories slot
// in here as fields.
type RepositoryProvider struct {
	UserRepo UserRepositoryFacade
}
