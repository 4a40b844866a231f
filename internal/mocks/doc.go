// Package mocks provides centralized mock implementations for testing.
//
// Each mock has function fields or canned return values for its interface
// methods and records calls for verification. Tests in other packages share
// these instead of defining inline fakes:
//
//	gen := &mocks.MockGenerator{
//	    GenerateIdeasFn: func(ctx context.Context, interests string) ([]domain.Idea, error) {
//	        return []domain.Idea{domain.NewIdea("A", "B")}, nil
//	    },
//	}
package mocks
