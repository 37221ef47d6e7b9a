package api

type Error struct {
	Code  string `json:"code,omitempty"`
	Error string `json:"error"`
}

type EncodeImageRequest struct {
	ImageToEncode     []byte `json:"image_to_encode"`
	Message           string `json:"message"`
	Link              string `json:"link,omitempty"`
	WatermarkText     string `json:"watermark_text,omitempty"`
	WatermarkPosition string `json:"watermark_position,omitempty"`
}

type EncodeImageResponse struct {
	EncodedImage []byte `json:"encoded_image"`
}

type DecodeImageRequest struct {
	ImageToDecode []byte `json:"image_to_decode"`
}

type DecodeImageResponse struct {
	Found   bool   `json:"found"`
	Message string `json:"message,omitempty"`
	Link    string `json:"link,omitempty"`
}

type VerifyImageResponse struct {
	ContainsHiddenMessage bool `json:"contains_hidden_message"`
}
