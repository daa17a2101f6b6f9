package dto

type GenerateQuizRequest struct {
	Subject  string `json:"subject" validate:"required"`
	Semester int    `json:"semester"`
	Topic    string `json:"topic"`
	Count    int    `json:"count"`
}

type GenerateExamRequest struct {
	Subject         string `json:"subject" validate:"required"`
	Semester        int    `json:"semester"`
	McqCount        int    `json:"mcq_count"`
	SubjectiveCount int    `json:"subjective_count"`
}

type GradeSubjectiveRequest struct {
	Subject  string `json:"subject"`
	Semester int    `json:"semester"`
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer"`
	MaxMarks int    `json:"max_marks"`
}
