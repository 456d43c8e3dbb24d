//go:generate go run go.uber.org/mock/mockgen -source=image.go -destination=../mocks/mock_image_repository.go -package=mocks
package repositories

import (
	"companion-lab/errors"
	"encoding/json"
	stderrors "errors"
	"time"

	"github.com/dgraph-io/badger/v4"
)

type IImageRepository interface {
	StoreImage(image Image) error
	GetImage(id string) (Image, error)
}

type Image struct {
	ID          string    `json:"id"`
	ContentType string    `json:"contentType"`
	Data        []byte    `json:"data"`
	UploadedBy  string    `json:"uploadedBy"`
	At          time.Time `json:"at"`
}

type ImageRepository struct {
	db *badger.DB
}

func NewImageRepository(db *badger.DB) *ImageRepository {
	return &ImageRepository{db: db}
}

func (i ImageRepository) StoreImage(image Image) error {
	bytes, err := json.Marshal(image)
	if err != nil {
		return err
	}
	return i.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte("image:"+image.ID), bytes)
	})
}

func (i ImageRepository) GetImage(id string) (Image, error) {
	var image Image
	err := i.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte("image:" + id))
		if stderrors.Is(err, badger.ErrKeyNotFound) {
			return errors.ErrImageNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(value []byte) error {
			return json.Unmarshal(value, &image)
		})
	})
	return image, err
}
