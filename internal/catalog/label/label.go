package label

// Label is a record label an album may be attributed to. Albums point at
// labels through a nullable, unenforced label_id; deleting a label never
// touches the albums that reference it.
type Label struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Promoter is the contact an album arrived through. Referenced the same
// soft way labels are.
type Promoter struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

const FieldName = "name"
