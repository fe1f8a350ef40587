package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/challenge/todo-list-api/internal/core/domain"
	"github.com/challenge/todo-list-api/internal/core/ports"
)

const collectionTasks = "tasks"

type TaskRepository struct {
	col *mongo.Collection
}

func NewTaskRepository(db *mongo.Database) *TaskRepository {
	return &TaskRepository{col: db.Collection(collectionTasks)}
}

// Create inserts a new task document.
func (r *TaskRepository) Create(ctx context.Context, t *domain.Task) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, t)
	return err
}

// FindByID retrieves a task by id.
func (r *TaskRepository) FindByID(ctx context.Context, id string) (*domain.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var t domain.Task
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&t); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}
	return &t, nil
}

// Save replaces the stored document for the task's id.
func (r *TaskRepository) Save(ctx context.Context, t *domain.Task) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": t.ID}, t)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

// Delete removes a task by id, reporting whether a document was removed.
func (r *TaskRepository) Delete(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount == 1, nil
}

// List returns tasks matching filter, newest first. The owner filter is the
// storage-side half of the ownership rule; the service layer decides when to
// apply it.
func (r *TaskRepository) List(ctx context.Context, filter ports.ListTasksFilter) ([]*domain.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.OwnerID != "" {
		query["owner_id"] = filter.OwnerID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	due := bson.M{}
	if !filter.DueFrom.IsZero() {
		due["$gte"] = filter.DueFrom
	}
	if !filter.DueTo.IsZero() {
		due["$lte"] = filter.DueTo
	}
	if len(due) > 0 {
		query["due_date"] = due
	}

	cur, err := r.col.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var tasks []*domain.Task
	if err := cur.All(ctx, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// EnsureIndexes creates the owner_id index used by scoped queries.
func (r *TaskRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "owner_id", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
