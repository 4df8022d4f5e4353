package request

// LessonRequest is a lesson payload inside a course create/edit request
type LessonRequest struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description,omitempty" binding:"max=2000"`
	VideoURL    string `json:"videoUrl,omitempty" binding:"max=500"`
	VideoLength int    `json:"videoLength,omitempty" binding:"gte=0"`
}

// CreateCourseRequest creates a catalog course
type CreateCourseRequest struct {
	Name           string          `json:"name" binding:"required,min=2,max=200"`
	Description    string          `json:"description" binding:"required,max=5000"`
	Category       string          `json:"category" binding:"required,max=100"`
	Price          float64         `json:"price" binding:"gte=0"`
	EstimatedPrice float64         `json:"estimatedPrice,omitempty" binding:"gte=0"`
	Tags           []string        `json:"tags,omitempty"`
	Level          string          `json:"level,omitempty"`
	Thumbnail      string          `json:"thumbnail,omitempty" binding:"max=500"`
	DemoURL        string          `json:"demoUrl,omitempty" binding:"max=500"`
	Benefits       []string        `json:"benefits,omitempty"`
	Prerequisites  []string        `json:"prerequisites,omitempty"`
	Lessons        []LessonRequest `json:"courseData,omitempty"`
}

// EditCourseRequest updates a catalog course. Zero-valued fields are
// left unchanged.
type EditCourseRequest struct {
	Name           string          `json:"name,omitempty" binding:"max=200"`
	Description    string          `json:"description,omitempty" binding:"max=5000"`
	Category       string          `json:"category,omitempty" binding:"max=100"`
	Price          *float64        `json:"price,omitempty"`
	EstimatedPrice *float64        `json:"estimatedPrice,omitempty"`
	Tags           []string        `json:"tags,omitempty"`
	Level          string          `json:"level,omitempty"`
	Thumbnail      string          `json:"thumbnail,omitempty" binding:"max=500"`
	DemoURL        string          `json:"demoUrl,omitempty" binding:"max=500"`
	Benefits       []string        `json:"benefits,omitempty"`
	Prerequisites  []string        `json:"prerequisites,omitempty"`
	Lessons        []LessonRequest `json:"courseData,omitempty"`
	IsHidden       *bool           `json:"is_hidden,omitempty"`
}

// AddLessonRequest appends one lesson to an existing course
type AddLessonRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description,omitempty" binding:"max=2000"`
	VideoURL    string `json:"videoUrl,omitempty" binding:"max=500"`
	VideoLength int    `json:"videoLength,omitempty" binding:"gte=0"`
}

// AddReviewRequest attaches a review to a course
type AddReviewRequest struct {
	Rating  float64 `json:"rating" binding:"required,gte=1,lte=5"`
	Comment string  `json:"comment,omitempty" binding:"max=2000"`
}

// ReplyReviewRequest attaches an admin reply to a review
type ReplyReviewRequest struct {
	ReviewID string `json:"reviewId" binding:"required"`
	Text     string `json:"text" binding:"required,max=2000"`
}

// AddQuestionRequest opens a question thread on a lesson
type AddQuestionRequest struct {
	LessonID string `json:"lessonId" binding:"required"`
	Text     string `json:"text" binding:"required,max=2000"`
}

// AddAnswerRequest replies to a question thread
type AddAnswerRequest struct {
	LessonID   string `json:"lessonId" binding:"required"`
	QuestionID string `json:"questionId" binding:"required"`
	Text       string `json:"text" binding:"required,max=2000"`
}
