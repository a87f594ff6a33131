package engine

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/Veraticus/inbox-ledger/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockStorage is a hand-rolled in-memory Storage for engine tests.
type mockStorage struct {
	existing    map[string]bool
	inserted    []model.BankMessage
	savedEvents []model.BillEvent
	existsErr   error
	insertErr   error
	saveErr     error
}

func newMockStorage() *mockStorage {
	return &mockStorage{existing: make(map[string]bool)}
}

func bankKey(sender, body string, timestampMillis int64) string {
	return fmt.Sprintf("%s|%s|%d", sender, body, timestampMillis)
}

func (m *mockStorage) SaveMessages(_ context.Context, _ []model.Message) (int, error) {
	return 0, nil
}

func (m *mockStorage) GetMessages(_ context.Context) ([]model.Message, error) {
	return nil, nil
}

func (m *mockStorage) GetMessageCount(_ context.Context) (int, error) {
	return 0, nil
}

func (m *mockStorage) ExistsBankMessage(_ context.Context, sender, body string, timestampMillis int64) (bool, error) {
	if m.existsErr != nil {
		return false, m.existsErr
	}
	return m.existing[bankKey(sender, body, timestampMillis)], nil
}

func (m *mockStorage) InsertBankMessages(_ context.Context, records []model.BankMessage) ([]string, error) {
	if m.insertErr != nil {
		return nil, m.insertErr
	}
	hashes := make([]string, 0, len(records))
	for _, record := range records {
		m.inserted = append(m.inserted, record)
		m.existing[bankKey(record.Sender, record.Body, record.TimestampMillis)] = true
		hashes = append(hashes, record.Hash)
	}
	return hashes, nil
}

func (m *mockStorage) SaveBillEvents(_ context.Context, events []model.BillEvent) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.savedEvents = append(m.savedEvents, events...)
	return nil
}

func (m *mockStorage) GetBillEvents(_ context.Context) ([]model.BillEvent, error) {
	return m.savedEvents, nil
}

func (m *mockStorage) GetBillEventByID(_ context.Context, _ string) (*model.BillEvent, error) {
	return nil, errors.New("not implemented")
}

func (m *mockStorage) UpdateBillStatus(_ context.Context, _ string, _ model.BillEventStatus) error {
	return nil
}

func (m *mockStorage) Migrate(_ context.Context) error { return nil }

func (m *mockStorage) Close() error { return nil }

func bankStatementMessage(ts int64) model.Message {
	return model.Message{
		Sender:          "HDFC-BANK",
		Body:            "HDFC Bank: Your credit card statement is ready. Total amt due AED 1,543.50. Card ending 1234.",
		TimestampMillis: ts,
	}
}

func TestClassifyAllInitializesEveryBucket(t *testing.T) {
	eng := New(newMockStorage())

	result, err := eng.ClassifyAll(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, 0, result.Total)
	assert.Len(t, result.ByCategory, len(model.Categories))
	for _, cat := range model.Categories {
		bucket, ok := result.ByCategory[cat]
		require.True(t, ok, "missing bucket for %s", cat)
		assert.NotNil(t, bucket)
		assert.Empty(t, bucket)
		assert.Equal(t, 0, result.Counts[cat])
	}
}

func TestClassifyAllStoresNewBankMessages(t *testing.T) {
	store := newMockStorage()
	eng := New(store)

	messages := []model.Message{
		bankStatementMessage(1000),
		{Sender: "FRIEND", Body: "Hey, call me when you get home", TimestampMillis: 2000},
	}

	result, err := eng.ClassifyAll(context.Background(), messages)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Total)
	assert.Equal(t, 1, result.Counts[model.CategoryBank])
	assert.Equal(t, 1, result.Counts[model.CategoryPersonal])

	require.Len(t, store.inserted, 1)
	assert.Equal(t, "HDFC-BANK", store.inserted[0].Sender)
	assert.Equal(t, messages[0].GenerateHash(), store.inserted[0].Hash)
	assert.NotEmpty(t, store.inserted[0].Indicators)
	require.Len(t, result.StoredIDs, 1)
}

func TestClassifyAllSkipsExistingBankMessages(t *testing.T) {
	store := newMockStorage()
	msg := bankStatementMessage(1000)
	store.existing[bankKey(msg.Sender, msg.Body, msg.TimestampMillis)] = true

	eng := New(store)
	result, err := eng.ClassifyAll(context.Background(), []model.Message{msg})
	require.NoError(t, err)

	// Still classified and counted, just not re-stored.
	assert.Equal(t, 1, result.Counts[model.CategoryBank])
	assert.Empty(t, result.NewBankMessages)
	assert.Empty(t, store.inserted)
}

func TestClassifyAllRerunDoesNotDuplicate(t *testing.T) {
	store := newMockStorage()
	eng := New(store)
	messages := []model.Message{bankStatementMessage(1000)}

	_, err := eng.ClassifyAll(context.Background(), messages)
	require.NoError(t, err)
	result, err := eng.ClassifyAll(context.Background(), messages)
	require.NoError(t, err)

	assert.Len(t, store.inserted, 1)
	assert.Empty(t, result.NewBankMessages)
}

func TestClassifyAllExistenceErrorSkipsMessage(t *testing.T) {
	store := newMockStorage()
	store.existsErr = errors.New("db locked")

	eng := New(store)
	result, err := eng.ClassifyAll(context.Background(), []model.Message{bankStatementMessage(1000)})
	require.NoError(t, err)

	// The batch completes; the unverifiable message is left unstored.
	assert.Equal(t, 1, result.Counts[model.CategoryBank])
	assert.Empty(t, store.inserted)
}

func TestClassifyAllPreservesOrderWithinBucket(t *testing.T) {
	eng := New(nil)

	messages := []model.Message{
		{Sender: "A", Body: "first message", TimestampMillis: 1},
		{Sender: "B", Body: "second message", TimestampMillis: 2},
		{Sender: "C", Body: "third message", TimestampMillis: 3},
	}

	result, err := eng.ClassifyAll(context.Background(), messages)
	require.NoError(t, err)

	bucket := result.ByCategory[model.CategoryPersonal]
	require.Len(t, bucket, 3)
	assert.Equal(t, "A", bucket[0].Message.Sender)
	assert.Equal(t, "B", bucket[1].Message.Sender)
	assert.Equal(t, "C", bucket[2].Message.Sender)
}

func TestClassifyAllNilStorage(t *testing.T) {
	eng := New(nil)

	result, err := eng.ClassifyAll(context.Background(), []model.Message{bankStatementMessage(1000)})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Counts[model.CategoryBank])
	assert.Empty(t, result.NewBankMessages)
}

func TestExtractAll(t *testing.T) {
	store := newMockStorage()
	eng := New(store)

	messages := []model.Message{
		{Sender: "HDFC-BANK", Body: "Your HDFC credit card bill of Rs.15,000 is due on 15/01/2024", TimestampMillis: 1},
		{Sender: "FRIEND", Body: "see you at 8", TimestampMillis: 2},
		{Sender: "AD-ENBD", Body: "AED 250.00 spent on your card", TimestampMillis: 3},
	}

	result, err := eng.ExtractAll(context.Background(), messages, "user-42")
	require.NoError(t, err)

	assert.Equal(t, 3, result.Total)
	assert.Equal(t, 2, result.Parsed)
	require.Len(t, result.Events, 2)
	for _, event := range result.Events {
		assert.Equal(t, "user-42", event.UserID)
	}
	assert.Len(t, store.savedEvents, 2)
}

func TestExtractAllNoMatches(t *testing.T) {
	store := newMockStorage()
	eng := New(store)

	result, err := eng.ExtractAll(context.Background(), []model.Message{
		{Sender: "FRIEND", Body: "lunch?", TimestampMillis: 1},
	}, "")
	require.NoError(t, err)

	assert.Equal(t, 0, result.Parsed)
	assert.Empty(t, result.Events)
	assert.Empty(t, store.savedEvents)
}

func TestExtractAllStorageError(t *testing.T) {
	store := newMockStorage()
	store.saveErr = errors.New("disk full")
	eng := New(store)

	result, err := eng.ExtractAll(context.Background(), []model.Message{
		{Sender: "HDFC-BANK", Body: "Your HDFC credit card bill of Rs.15,000 is due on 15/01/2024", TimestampMillis: 1},
	}, "")

	// Extraction results are still returned alongside the storage error.
	require.Error(t, err)
	assert.Equal(t, 1, result.Parsed)
}
