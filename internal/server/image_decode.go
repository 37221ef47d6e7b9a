package server

import (
	"bytes"
	"image"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AlinaLB/celfie-lock/api"
	"github.com/AlinaLB/celfie-lock/internal/logging"
	"github.com/AlinaLB/celfie-lock/pkg/config"
	"github.com/AlinaLB/celfie-lock/pkg/raster"
	"github.com/AlinaLB/celfie-lock/pkg/steg"
)

// DecodeImageHandler godoc
//
// @Summary Reveal the message hidden in an image
// @Description This endpoint extracts and decrypts the message previously hidden in the supplied image. An image without a recognizable payload is a successful response with found=false, not an error
// @Tags image
// @Accept json
// @Produce json
// @Param requestBody body api.DecodeImageRequest true "Body with image to decode"
// @Success 200 {object} api.DecodeImageResponse
// @Failure 400 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /decode/image [post]
func DecodeImageHandler(ctx *gin.Context) {
	var requestBody api.DecodeImageRequest

	logger := logging.BuildLoggerFromCtx(ctx)
	logger.Debug("Processing image decode request")

	if err := ctx.ShouldBindJSON(&requestBody); err != nil {
		logger.WithError(err).Error("Error decoding request body")
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, errRequestBodyDecode)
		return
	}

	imageToDecode, _, err := image.Decode(bytes.NewReader(requestBody.ImageToDecode))
	if err != nil {
		logger.WithError(err).Error("Error decoding request image")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errInvalidImage)
		return
	}

	imageDecoder := steg.NewImageDecoder(raster.FromImage(imageToDecode), config.ImageDecodeConfig{
		Logger: logger.Logger,
	})

	decodedMessage, found := imageDecoder.DecodeMessage()

	logger.With("stats", toHumanizedDecodeStats(imageDecoder.Stats())).With("found", found).
		Info("Image decoding finished")

	ctx.JSON(http.StatusOK, api.DecodeImageResponse{
		Found:   found,
		Message: decodedMessage.Text,
		Link:    decodedMessage.Link,
	})
}
