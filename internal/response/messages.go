package response

// Messages holds the user facing failure strings for one locale.
type Messages struct {
	InvalidJSON        string
	PasswordTooShort   string
	RegisterFailed     string
	CreateTodoFailed   string
	DeleteTodoFailed   string
	InvalidCredentials string
	LoginFailed        string
	Unauthorized       string
	Forbidden          string
	TooManyRequests    string
	Internal           string
}

var English = Messages{
	InvalidJSON:        "invalid JSON",
	PasswordTooShort:   "password must be at least 6 characters",
	RegisterFailed:     "failed to register user",
	CreateTodoFailed:   "failed to add todo",
	DeleteTodoFailed:   "failed to delete todo",
	InvalidCredentials: "invalid credentials",
	LoginFailed:        "failed to log in",
	Unauthorized:       "unauthorized",
	Forbidden:          "forbidden",
	TooManyRequests:    "too many requests",
	Internal:           "internal server error",
}

var Korean = Messages{
	InvalidJSON:        "잘못된 JSON 요청입니다.",
	PasswordTooShort:   "비밀번호는 6자 이상이어야 합니다.",
	RegisterFailed:     "회원가입에 실패했습니다.",
	CreateTodoFailed:   "할 일 추가에 실패했습니다.",
	DeleteTodoFailed:   "할 일 삭제에 실패했습니다.",
	InvalidCredentials: "이메일 또는 비밀번호가 올바르지 않습니다.",
	LoginFailed:        "로그인에 실패했습니다.",
	Unauthorized:       "인증이 필요합니다.",
	Forbidden:          "권한이 없습니다.",
	TooManyRequests:    "요청이 너무 많습니다.",
	Internal:           "서버 오류가 발생했습니다.",
}

// For returns the messages for locale, English when unknown.
func For(locale string) Messages {
	if locale == "ko" {
		return Korean
	}
	return English
}
