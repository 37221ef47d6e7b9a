package cli

import (
	"fmt"
	"image/png"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/AlinaLB/celfie-lock/pkg/config"
	"github.com/AlinaLB/celfie-lock/pkg/model"
	"github.com/AlinaLB/celfie-lock/pkg/raster"
	"github.com/AlinaLB/celfie-lock/pkg/steg"
	"github.com/AlinaLB/celfie-lock/pkg/watermark"
)

var (
	pngCompressionMapping = map[string]png.CompressionLevel{
		"default": png.DefaultCompression,
		"none":    png.NoCompression,
		"fast":    png.BestSpeed,
		"best":    png.BestCompression,
	}
)

type encodeOpts struct {
	sourceImage       string
	outputImage       string
	message           string
	link              string
	watermarkText     string
	watermarkPosition string
	pngCompression    string
}

func (o encodeOpts) toEncodeConfig() config.ImageEncodeConfig {
	mappedCompression, found := pngCompressionMapping[o.pngCompression]
	if !found {
		mappedCompression = png.DefaultCompression
	}
	return config.ImageEncodeConfig{
		PngCompressionLevel: mappedCompression,
	}
}

func encodeCommand() *cobra.Command {
	opts := encodeOpts{}

	encCmd := &cobra.Command{
		Use:     "encode",
		Example: `celfie encode --image photo.jpg --output-file protected.png --message "My secret" --link https://example.com`,
		Short:   "Hide an encrypted message inside an image",
		RunE: func(cmd *cobra.Command, args []string) error {
			return EncodeMessageIntoImage(opts)
		},
	}

	encCmd.Flags().StringVar(&opts.sourceImage, "image", "", "Image to hide the message in (original will not be touched)")
	encCmd.Flags().StringVar(&opts.outputImage, "output-file", "", "Name for the encoded image that will be generated. Forced to a .png extension to keep the hidden data intact")
	encCmd.Flags().StringVar(&opts.message, "message", "", "Message to hide in the image")
	encCmd.Flags().StringVar(&opts.link, "link", "", "Optional URL to hide alongside the message")
	encCmd.Flags().StringVar(&opts.watermarkText, "watermark", "", "Optional visible watermark text to draw on the image")
	encCmd.Flags().StringVar(&opts.watermarkPosition, "watermark-position", string(watermark.BottomLeft), "Watermark position: top-left, top-right, bottom-left, bottom-right, center")
	encCmd.Flags().StringVar(&opts.pngCompression, "png-compression", "default", "Compression for output png. Options are default, none, fast, best")

	MarkFlagsRequired(encCmd, "image", "output-file", "message")

	return encCmd
}

func EncodeMessageIntoImage(opts encodeOpts) error {
	s := NewSpinner()
	s.Prefix = "Reading source image from disk "
	s.Start()
	defer s.Stop()

	srcImage, err := getImageFromFilePath(opts.sourceImage)
	if err != nil {
		return err
	}

	if opts.watermarkText != "" {
		s.Prefix = "Applying watermark "
		watermark.Overlay{
			Text:     opts.watermarkText,
			Position: watermark.Position(opts.watermarkPosition),
		}.Apply(srcImage)
	}

	s.Prefix = "Encoding message "
	iEncoder := steg.NewImageEncoder(raster.FromImage(srcImage), opts.toEncodeConfig())
	if err := iEncoder.EncodeMessage(model.Message{Text: opts.message, Link: opts.link}); err != nil {
		return err
	}

	outputPath := raster.EnsurePNGPath(opts.outputImage)
	if outputPath != opts.outputImage {
		fmt.Printf("Note: output forced to %s to preserve hidden data\n", outputPath)
	}

	s.Prefix = "Generating output PNG image "
	outputFile, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer outputFile.Close()
	if err := iEncoder.WriteEncodedPNG(outputFile); err != nil {
		return err
	}

	s.FinalMSG = fmt.Sprintf("Generated %s with the hidden message encoded\n", outputPath)
	s.Stop()

	fmt.Printf("Payload framing time: %s\n", iEncoder.Stats().Framing)
	fmt.Printf("Data encode time: %s\n", iEncoder.Stats().DataEncoding)
	fmt.Printf("Output image encode time: %s\n", iEncoder.Stats().OutputImageEncoding)
	fmt.Printf("Image capacity: %s\n", humanize.Comma(int64(iEncoder.Raster().CapacityBits())))
	return nil
}

func decodeCommand() *cobra.Command {
	var encodedImageFile string

	decCmd := &cobra.Command{
		Use:     "decode",
		Example: "celfie decode --source protected.png",
		Short:   "Reveal the message hidden in an encoded image",
		RunE: func(cmd *cobra.Command, args []string) error {
			return DecodeMessageFromImage(encodedImageFile)
		},
	}

	decCmd.Flags().StringVar(&encodedImageFile, "source", "", "Image with a hidden message to decode")
	MarkFlagsRequired(decCmd, "source")
	return decCmd
}

func DecodeMessageFromImage(encodedImageFile string) error {
	s := NewSpinner()
	s.Prefix = "Reading source image from disk "
	s.Start()

	r, err := raster.Load(encodedImageFile)
	if err != nil {
		s.Stop()
		return err
	}

	s.Prefix = "Decoding message "
	decoder := steg.NewImageDecoder(r, config.ImageDecodeConfig{})
	decodedMessage, found := decoder.DecodeMessage()
	s.Stop()

	if !found {
		fmt.Println("No hidden message was found in the supplied image")
		return nil
	}

	fmt.Printf("Message: %s\n", decodedMessage.Text)
	if decodedMessage.Link != "" {
		fmt.Printf("Link: %s\n", decodedMessage.Link)
	}
	fmt.Printf("Data decode time: %s\n", decoder.Stats().DataDecoding)
	return nil
}

func verifyCommand() *cobra.Command {
	var imageFile string

	verCmd := &cobra.Command{
		Use:     "verify",
		Example: "celfie verify --source maybe-protected.png",
		Short:   "Check whether an image carries a hidden message",
		RunE: func(cmd *cobra.Command, args []string) error {
			return VerifyImage(imageFile)
		},
	}

	verCmd.Flags().StringVar(&imageFile, "source", "", "Image to check for a hidden message")
	MarkFlagsRequired(verCmd, "source")
	return verCmd
}

func VerifyImage(imageFile string) error {
	r, err := raster.Load(imageFile)
	if err != nil {
		return err
	}

	if steg.NewImageDecoder(r, config.ImageDecodeConfig{}).Verify() {
		fmt.Println("Image contains a hidden message")
	} else {
		fmt.Println("Image does not contain a recognizable hidden message")
	}
	return nil
}
