package server

import (
	"bytes"
	"errors"
	"image"
	"image/draw"
	"image/png"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AlinaLB/celfie-lock/api"
	"github.com/AlinaLB/celfie-lock/internal/logging"
	"github.com/AlinaLB/celfie-lock/pkg/config"
	"github.com/AlinaLB/celfie-lock/pkg/model"
	"github.com/AlinaLB/celfie-lock/pkg/raster"
	"github.com/AlinaLB/celfie-lock/pkg/steg"
	"github.com/AlinaLB/celfie-lock/pkg/watermark"
)

// EncodeImageHandler godoc
//
// @Summary Hide a message inside the supplied image
// @Description This endpoint encrypts the supplied message (plus optional link), hides it in the image, and returns the encoded image as a lossless PNG. All errors are returned as JSON
// @Tags image
// @Accept json
// @Produce json
// @Param requestBody body api.EncodeImageRequest true "Body with the image, the message to hide and optional link/watermark settings"
// @Success 200 {object} api.EncodeImageResponse
// @Failure 400 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /encode/image [post]
func EncodeImageHandler(ctx *gin.Context) {
	var requestBody api.EncodeImageRequest

	logger := logging.BuildLoggerFromCtx(ctx)
	logger.Debug("Processing image encode request")

	if err := ctx.ShouldBindJSON(&requestBody); err != nil {
		logger.WithError(err).Error("Error decoding request body")
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, errRequestBodyDecode)
		return
	}

	imageToEncode, _, err := image.Decode(bytes.NewReader(requestBody.ImageToEncode))
	if err != nil {
		logger.WithError(err).Error("Error decoding request image")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errInvalidImage)
		return
	}

	rgbaImg := image.NewRGBA(imageToEncode.Bounds())
	draw.Draw(rgbaImg, rgbaImg.Bounds(), imageToEncode, rgbaImg.Bounds().Min, draw.Src)
	imageToEncode = nil

	if requestBody.WatermarkText != "" {
		watermark.Overlay{
			Text:     requestBody.WatermarkText,
			Position: watermark.Position(requestBody.WatermarkPosition),
		}.Apply(rgbaImg)
	}

	imageEncoder := steg.NewImageEncoder(raster.FromImage(rgbaImg), config.ImageEncodeConfig{
		PngCompressionLevel: png.BestCompression, // to reduce bandwidth costs since lower compression results in huge images
		Logger:              logger.Logger,
	})

	err = imageEncoder.EncodeMessage(model.Message{Text: requestBody.Message, Link: requestBody.Link})
	if err != nil {
		var capErr *steg.CapacityError
		if errors.As(err, &capErr) {
			logger.WithError(err).Error("Message does not fit in supplied image")
			ctx.AbortWithStatusJSON(http.StatusBadRequest, errMessageTooLarge)
			return
		}
		logger.WithError(err).Error("Error encoding message into image")
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, errEncode)
		return
	}

	encodedImageBuffer := bytes.NewBuffer(make([]byte, 0, len(requestBody.ImageToEncode))) // pre allocate with size of original, since it should be similar
	if err := imageEncoder.WriteEncodedPNG(encodedImageBuffer); err != nil {
		logger.WithError(err).Error("Error writing encoded PNG")
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, errEncode)
		return
	}

	logger.With("stats", toHumanizedEncodeStats(imageEncoder.Stats())).Info("Image encoding was successful")

	ctx.JSON(http.StatusOK, api.EncodeImageResponse{EncodedImage: encodedImageBuffer.Bytes()})
}
