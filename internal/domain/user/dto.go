package user

type CreateUserInput struct {
	Username     string `json:"username" binding:"required,min=3,max=50"`
	Password     string `json:"password" binding:"required,min=6"`
	Email        string `json:"email" binding:"required,email"`
	FullName     string `json:"full_name" binding:"required"`
	Role         string `json:"role" binding:"omitempty,oneof=STUDENT FACULTY HOD DEAN ADMIN"`
	DepartmentID *uint  `json:"department_id"`
	MentorID     *uint  `json:"mentor_id"`
}

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AssignMentorInput struct {
	MentorID uint `json:"mentor_id" binding:"required"`
}

type UserDTO struct {
	ID           uint   `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	FullName     string `json:"full_name"`
	Role         Role   `json:"role"`
	DepartmentID *uint  `json:"department_id"`
	MentorID     *uint  `json:"mentor_id"`
}

func ToDTO(u User) UserDTO {
	return UserDTO{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		FullName:     u.FullName,
		Role:         u.Role,
		DepartmentID: u.DepartmentID,
		MentorID:     u.MentorID,
	}
}
