package firestore

import (
	"context"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/prato-lab/prato/pkg/domain/model"
	"google.golang.org/api/iterator"
)

// ingredientDoc is the Firestore representation of model.Ingredient
type ingredientDoc struct {
	Name     string `firestore:"name"`
	Quantity string `firestore:"quantity"`
}

// recipeDoc is the Firestore document representation of model.Recipe
type recipeDoc struct {
	ID              string          `firestore:"id"`
	CompanyID       string          `firestore:"company_id"`
	UserPhone       string          `firestore:"user_phone"`
	Product         string          `firestore:"product"`
	Ingredients     []ingredientDoc `firestore:"ingredients"`
	OriginalMessage string          `firestore:"original_message"`
	CreatedAt       time.Time       `firestore:"created_at"`
}

func toRecipeDoc(r *model.Recipe) *recipeDoc {
	ingredients := make([]ingredientDoc, len(r.Ingredients))
	for i, ing := range r.Ingredients {
		ingredients[i] = ingredientDoc{Name: ing.Name, Quantity: ing.Quantity}
	}
	return &recipeDoc{
		ID:              string(r.ID),
		CompanyID:       string(r.CompanyID),
		UserPhone:       r.UserPhone,
		Product:         r.Product,
		Ingredients:     ingredients,
		OriginalMessage: r.OriginalMessage,
		CreatedAt:       r.CreatedAt,
	}
}

func fromRecipeDoc(d *recipeDoc) *model.Recipe {
	ingredients := make([]model.Ingredient, len(d.Ingredients))
	for i, ing := range d.Ingredients {
		ingredients[i] = model.Ingredient{Name: ing.Name, Quantity: ing.Quantity}
	}
	return &model.Recipe{
		ID:              model.RecipeID(d.ID),
		CompanyID:       model.CompanyID(d.CompanyID),
		UserPhone:       d.UserPhone,
		Product:         d.Product,
		Ingredients:     ingredients,
		OriginalMessage: d.OriginalMessage,
		CreatedAt:       d.CreatedAt,
	}
}

type recipeRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newRecipeRepository(client *firestore.Client) *recipeRepository {
	return &recipeRepository{client: client}
}

func (r *recipeRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(r.collectionPrefix + collectionRecipes)
}

func (r *recipeRepository) Create(ctx context.Context, rec *model.Recipe) (*model.Recipe, error) {
	created := *rec
	if created.ID == "" {
		created.ID = model.NewRecipeID()
	}
	if created.CreatedAt.IsZero() {
		created.CreatedAt = time.Now().UTC()
	}

	docRef := r.collection().Doc(string(created.ID))
	if _, err := docRef.Set(ctx, toRecipeDoc(&created)); err != nil {
		return nil, goerr.Wrap(err, "failed to create recipe")
	}
	return &created, nil
}

// FindByProduct scans the company's recipes in created_at descending order
// and returns the first whose product name contains the given name,
// case-insensitively. Firestore has no substring operator, so the match
// happens client side; ordering makes the winner deterministic.
func (r *recipeRepository) FindByProduct(ctx context.Context, companyID model.CompanyID, name string) (*model.Recipe, error) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return nil, nil
	}

	query := r.collection().
		Where("company_id", "==", string(companyID)).
		OrderBy("created_at", firestore.Desc)

	iter := query.Documents(ctx)
	defer iter.Stop()

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate recipes")
		}

		var d recipeDoc
		if err := doc.DataTo(&d); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal recipe")
		}
		if strings.Contains(strings.ToLower(d.Product), needle) {
			return fromRecipeDoc(&d), nil
		}
	}
	return nil, nil
}
