package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/fulldump/goconfig"

	"github.com/fulldump/landregistry/bootstrap"
	"github.com/fulldump/landregistry/configuration"
)

var banner = `
 _                     _   ____            _     _              
| |    __ _ _ __   __| | |  _ \ ___  __ _(_)___| |_ _ __ _   _ 
| |   / _' | '_ \ / _' | | |_) / _ \/ _' | / __| __| '__| | | |
| |__| (_| | | | | (_| | |  _ <  __/ (_| | \__ \ |_| |  | |_| |
|_____\__,_|_| |_|\__,_| |_| \_\___|\__, |_|___/\__|_|   \__, |
                                    |___/                |___/ 
                                         version ` + bootstrap.VERSION + `
`

func main() {

	c := configuration.Default()
	goconfig.Read(&c)

	if c.Version {
		fmt.Println("Version:", bootstrap.VERSION)
		return
	}

	if c.ShowBanner {
		fmt.Println(banner)
	}

	if c.ShowConfig {
		e := json.NewEncoder(os.Stdout)
		e.SetIndent("", "    ")
		e.Encode(c)
	}

	start, _, err := bootstrap.Bootstrap(&c)
	if err != nil {
		log.Println("ERROR:", err.Error())
		os.Exit(-1)
	}

	start()
}
