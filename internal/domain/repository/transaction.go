package repository

import "context"

// RepositoryFactory creates repository instances bound to a single
// transaction. Usecases receive it inside TransactionManager.Execute so every
// repository call in the callback shares one atomic unit of work.
type RepositoryFactory interface {
	UserRepo() UserRepository
	ContactRepo() ContactRepository
}

// TransactionManager abstracts transactional execution. The token mint on
// login and the token clear on logout each run through Execute so the
// read-check-then-write on the user row is never interleaved with another
// write.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
