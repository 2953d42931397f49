package usecase

import "context"

// PhotoFile is one file picked by the operator.
type PhotoFile struct {
	Filename string
	Data     []byte
}

// PhotoUsecase stores listing photos in the object store.
type PhotoUsecase interface {
	// UploadPhotos writes the files one after another and returns their public URLs
	// in input order. The first failure aborts the remaining uploads.
	UploadPhotos(ctx context.Context, files []PhotoFile) ([]string, error)
}
