package cmd

import (
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/cheggaaa/pb"

	legomap "github.com/leifgehrmann/lego-art-map-blog-post"
)

type CmdDownload struct {
	global *GlobalOptions

	URL string `short:"u" long:"url" description:"Download from this URL instead of Natural Earth"`
}

func init() {
	_, err := parser.AddCommand("download",
		"Download source data",
		"Download the Natural Earth land or lakes shapefile",
		&CmdDownload{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd CmdDownload) Usage() string {
	return "[land|water] filename"
}

func (cmd CmdDownload) Execute(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("Options missing, Usage: %s", cmd.Usage())
	}

	url := cmd.URL
	if url == "" {
		switch args[0] {
		case "land":
			url = legomap.DefaultLandURL
		case "water":
			url = legomap.DefaultWaterURL
		default:
			return fmt.Errorf("Unknown dataset %q, Usage: %s", args[0], cmd.Usage())
		}
	}

	return download(url, args[1])
}

func download(url, filename string) error {
	resp, err := http.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("Failed to download %s: %s", url, resp.Status)
	}

	out, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer out.Close()

	// Without a Content-Length the bar only counts bytes
	total := int(resp.ContentLength)
	if total < 0 {
		total = 0
	}

	bar := pb.New(total).SetUnits(pb.U_BYTES).Format("[=> ]")
	bar.Start()
	defer bar.Finish()

	reader := bar.NewProxyReader(resp.Body)
	_, err = io.Copy(out, reader)
	return err
}
