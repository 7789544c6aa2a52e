package app

import (
	"github.com/specialistvlad/grasschain/internal/registry"
	"github.com/specialistvlad/grasschain/modules/buffer"
	"github.com/specialistvlad/grasschain/modules/region"
	"github.com/specialistvlad/grasschain/modules/resample"
)

// coreModules is the definitive list of all modules that are compiled into
// the grasschain binary.
var coreModules = []registry.Module{
	&region.Module{},
	&resample.Module{},
	&buffer.Module{},
}
