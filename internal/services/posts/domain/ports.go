package domain

import "context"

// FetcherPort is the raw comment fetcher contract. Implementations wrap a
// social platform client; authentication and pagination are theirs to handle
type FetcherPort interface {
	FetchComments(ctx context.Context, ticker string) ([]RawComment, error)
}

// ServicePort defines the normalization contract for posts
type ServicePort interface {
	Normalize(ctx context.Context, raw RawComment) (Post, error)
	NormalizeAll(ctx context.Context, raws []RawComment) ([]Post, error)
	PostsFor(ctx context.Context, ticker string) ([]Post, error)
}
