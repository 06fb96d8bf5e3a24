package dto

type AvatarFile struct {
	Reader interface {
		Read(p []byte) (n int, err error)
	}
	FileName string
}
