package domain

// PublicUser is a row in the public user directory: a user owning at
// least one public bookmark or repository.
type PublicUser struct {
	Username           string
	PublicBookmarks    int
	PublicRepositories int
}
