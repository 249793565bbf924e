package domain

// Recipe is a cooking record owned by a user with structured sub-components.
type Recipe struct {
	RecipeID    int64  `json:"recipeId" db:"recipe_id"`
	UserID      int64  `json:"-" db:"user_id"` // FK -> users.user_id (NON-NULL)
	Title       string `json:"title" db:"title"`
	Description string `json:"description" db:"description"`
	ImageURL    string `json:"imageUrl" db:"image_url"`
	Favorite    bool   `json:"favorite" db:"favorite"`
	Time        string `json:"time" db:"time"`
	SourceURL   string `json:"sourceUrl" db:"source_url"`
	Servings    int    `json:"servings" db:"servings"`
	PortionSize int    `json:"portionSize" db:"portion_size"`
	AuditFields

	// Collections are filled on read; their tables are the source of truth.
	Ingredients       []Ingredient       `json:"ingredients" db:"-"`
	NutritionalValues []NutritionalValue `json:"nutritionalValues" db:"-"`
	Steps             []RecipeStep       `json:"steps" db:"-"`
	Tools             []Tool             `json:"tools" db:"-"`
	Tags              []Tag              `json:"tags" db:"-"`
}

// IsOwnedBy reports whether userID owns the recipe.
func (r *Recipe) IsOwnedBy(userID int64) bool {
	return r.UserID == userID
}

// ApplyUpdate copies the scalar fields of other onto r. Collections are left alone.
func (r *Recipe) ApplyUpdate(other Recipe) {
	r.Title = other.Title
	r.Description = other.Description
	r.ImageURL = other.ImageURL
	r.Favorite = other.Favorite
	r.Time = other.Time
	r.SourceURL = other.SourceURL
	r.Servings = other.Servings
	r.PortionSize = other.PortionSize
}

func (r *Recipe) AddIngredient(i *Ingredient) {
	i.RecipeID = r.RecipeID
	r.Ingredients = append(r.Ingredients, *i)
}

func (r *Recipe) AddNutritionalValue(n *NutritionalValue) {
	n.RecipeID = r.RecipeID
	r.NutritionalValues = append(r.NutritionalValues, *n)
}

func (r *Recipe) AddStep(s *RecipeStep) {
	s.RecipeID = r.RecipeID
	r.Steps = append(r.Steps, *s)
}

func (r *Recipe) AddTool(t *Tool) {
	t.RecipeID = r.RecipeID
	r.Tools = append(r.Tools, *t)
}

func (r *Recipe) AddTag(t *Tag) {
	t.RecipeID = r.RecipeID
	r.Tags = append(r.Tags, *t)
}

// LinkChildren points every loaded child at r. Used once the recipe id is known.
func (r *Recipe) LinkChildren() {
	for i := range r.Ingredients {
		r.Ingredients[i].RecipeID = r.RecipeID
	}
	for i := range r.NutritionalValues {
		r.NutritionalValues[i].RecipeID = r.RecipeID
	}
	for i := range r.Steps {
		r.Steps[i].RecipeID = r.RecipeID
	}
	for i := range r.Tools {
		r.Tools[i].RecipeID = r.RecipeID
	}
	for i := range r.Tags {
		r.Tags[i].RecipeID = r.RecipeID
	}
}
