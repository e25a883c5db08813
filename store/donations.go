package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	models "github.com/femifunmi/foundation-backend-go/models"
)

func (s *Store) ListDonationTransactions(ctx context.Context) ([]models.DonationTransaction, error) {
	transactions := []models.DonationTransaction{}
	if err := s.listAll(ctx, colDonationTransactions, &transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}

func (s *Store) GetDonationTransaction(ctx context.Context, id string) (models.DonationTransaction, error) {
	var tx models.DonationTransaction
	err := s.findByID(ctx, colDonationTransactions, id, &tx)
	return tx, err
}

func (s *Store) InsertDonationTransaction(ctx context.Context, tx models.DonationTransaction) error {
	return s.insertOne(ctx, colDonationTransactions, tx)
}

// UpdateDonationStatus patches only the status and update stamp of one
// transaction and returns the resulting document.
func (s *Store) UpdateDonationStatus(ctx context.Context, id, status string) (models.DonationTransaction, error) {
	var updated models.DonationTransaction
	err := s.collection(colDonationTransactions).FindOneAndUpdate(
		ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"transactionStatus": status, "updatedAt": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.DonationTransaction{}, ErrNotFound
	}
	return updated, err
}

func (s *Store) ListDonationCases(ctx context.Context) ([]models.DonationCase, error) {
	cases := []models.DonationCase{}
	if err := s.listAll(ctx, colDonationCases, &cases); err != nil {
		return nil, err
	}
	return cases, nil
}

func (s *Store) InsertDonationCase(ctx context.Context, donationCase models.DonationCase) error {
	return s.insertOne(ctx, colDonationCases, donationCase)
}

// GetDonationContent returns the single donation page content document.
func (s *Store) GetDonationContent(ctx context.Context) (models.DonationContent, error) {
	var content models.DonationContent
	err := s.collection(colDonationContent).FindOne(ctx, bson.M{}).Decode(&content)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return seedDonationContent, nil
	}
	return content, err
}

func (s *Store) ReplaceDonationContent(ctx context.Context, content models.DonationContent) error {
	_, err := s.collection(colDonationContent).ReplaceOne(
		ctx,
		bson.M{},
		content,
		options.Replace().SetUpsert(true),
	)
	return err
}
