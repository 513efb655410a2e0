package domain

import "campus-hub/domain/mimetypes"

// FileDescriptor is a user-selected file. It is only previewed locally.
type FileDescriptor struct {
	Name      string
	MediaType string
	Content   []byte
}

// Kind classifies the file by its declared media type, sniffing the
// content when no type was declared.
func (f FileDescriptor) Kind() mimetypes.Kind {
	return mimetypes.Classify(mimetypes.Resolve(f.MediaType, f.Content))
}

// Attachment describes the file. Only images carry a preview reference.
func (f FileDescriptor) Attachment() Attachment {
	kind := f.Kind()
	attachment := Attachment{Name: f.Name, Kind: kind}
	if kind == mimetypes.KindImage {
		attachment.PreviewRef = mimetypes.PreviewRef(mimetypes.Resolve(f.MediaType, f.Content), f.Content)
	}
	return attachment
}
