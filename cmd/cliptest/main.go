//go:build ignore

package main

import (
	"fmt"
	"time"

	"github.com/Elun4705/Interactive/internal/clipboard"
)

func main() {
	fmt.Println("Testing clipboard read...")
	img, err := clipboard.ReadImage()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if img == nil {
		fmt.Println("No image in clipboard")
		return
	}
	fmt.Printf("Image found: %dx%d, %d bytes (%d KB)\n", img.Width, img.Height, len(img.Data), img.SizeKB())

	file, err := clipboard.ReadAttachment(time.Now())
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("Attachment: %s (%d byte data URL)\n", file.Name, len(file.DataURL))
}
