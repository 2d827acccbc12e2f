package errors

// translations maps validation codes to user-facing messages. Loaded once,
// read-only afterwards.
var translations = map[string]string{
	"REGISTER_USER.NOT_CONTAIN_NEEDED_PROPERTY":                        "tidak dapat membuat user baru karena properti yang dibutuhkan tidak ada",
	"REGISTER_USER.NOT_MEET_DATA_TYPE_SPECIFICATION":                   "tidak dapat membuat user baru karena tipe data tidak sesuai",
	"REGISTER_USER.USERNAME_LIMIT_CHAR":                                "tidak dapat membuat user baru karena karakter username melebihi batas limit",
	"REGISTER_USER.USERNAME_CONTAIN_RESTRICTED_CHARACTER":              "tidak dapat membuat user baru karena username mengandung karakter terlarang",
	"USER_LOGIN.NOT_CONTAIN_NEEDED_PROPERTY":                           "harus mengirimkan username dan password",
	"USER_LOGIN.NOT_MEET_DATA_TYPE_SPECIFICATION":                      "username dan password harus string",
	"REFRESH_AUTHENTICATION_USE_CASE.NOT_CONTAIN_REFRESH_TOKEN":        "harus mengirimkan token refresh",
	"REFRESH_AUTHENTICATION_USE_CASE.PAYLOAD_NOT_MEET_DATA_TYPE_SPECIFICATION": "refresh token harus string",
	"DELETE_AUTHENTICATION_USE_CASE.NOT_CONTAIN_REFRESH_TOKEN":         "harus mengirimkan token refresh",
	"DELETE_AUTHENTICATION_USE_CASE.PAYLOAD_NOT_MEET_DATA_TYPE_SPECIFICATION": "refresh token harus string",
	"NEW_THREAD.NOT_CONTAIN_NEEDED_PROPERTY":                           "tidak dapat membuat thread baru karena properti title atau body tidak ada",
	"NEW_THREAD.NOT_MEET_DATA_TYPE_SPECIFICATION":                      "tidak dapat membuat thread baru karena tipe data title atau body tidak sesuai",
	"ADDED_THREAD.NOT_CONTAIN_NEEDED_PROPERTY":                         "properti yang dibutuhkan pada added thread tidak ada",
	"ADDED_THREAD.NOT_MEET_DATA_TYPE_SPECIFICATION":                    "tipe data pada added thread tidak sesuai",
	"NEW_COMMENT.NOT_CONTAIN_NEEDED_PROPERTY":                          "tidak dapat membuat komentar baru karena properti content tidak ada",
	"NEW_COMMENT.NOT_MEET_DATA_TYPE_SPECIFICATION":                     "tidak dapat membuat komentar baru karena tipe data content tidak sesuai",
	"NEW_COMMENT.CANNOT_BE_EMPTY_STRING":                               "content komentar tidak boleh kosong",
	"ADDED_COMMENT.NOT_CONTAIN_NEEDED_PROPERTY":                        "properti yang dibutuhkan pada added comment tidak ada",
	"ADDED_COMMENT.NOT_MEET_DATA_TYPE_SPECIFICATION":                   "tipe data pada added comment tidak sesuai",
	"NEW_REPLY.NOT_CONTAIN_NEEDED_PROPERTY":                            "tidak dapat membuat balasan baru karena properti content tidak ada",
	"NEW_REPLY.NOT_MEET_DATA_TYPE_SPECIFICATION":                       "tidak dapat membuat balasan baru karena tipe data content tidak sesuai",
	"NEW_REPLY.CANNOT_BE_EMPTY_STRING":                                 "content balasan tidak boleh kosong",
	"ADDED_REPLY.NOT_CONTAIN_NEEDED_PROPERTY":                          "properti yang dibutuhkan pada added reply tidak ada",
	"ADDED_REPLY.NOT_MEET_DATA_TYPE_SPECIFICATION":                     "tipe data pada added reply tidak sesuai",
}

// Translate maps a ValidationError to its user-facing InvariantError.
// Codes without a translation and all other errors pass through unchanged.
func Translate(err error) error {
	if v, ok := err.(*ValidationError); ok {
		if msg, ok := translations[v.Code]; ok {
			return &InvariantError{Message: msg}
		}
	}
	return err
}
