// Package programs aggregates the per-protocol CPI bindings into a single
// roster for registry population.
package programs

import (
	"github.com/rovshanmuradov/solana-dex-cpi/programs/bonkswap"
	"github.com/rovshanmuradov/solana-dex-cpi/programs/boopfun"
	"github.com/rovshanmuradov/solana-dex-cpi/programs/byreal"
	"github.com/rovshanmuradov/solana-dex-cpi/programs/carrot"
	"github.com/rovshanmuradov/solana-dex-cpi/programs/dammv2"
	"github.com/rovshanmuradov/solana-dex-cpi/programs/dbc"
	"github.com/rovshanmuradov/solana-dex-cpi/programs/defituna"
	"github.com/rovshanmuradov/solana-dex-cpi/programs/dlmm"
	"github.com/rovshanmuradov/solana-dex-cpi/programs/gamma"
	"github.com/rovshanmuradov/solana-dex-cpi/programs/guacswap"
	"github.com/rovshanmuradov/solana-dex-cpi/programs/heaven"
	"github.com/rovshanmuradov/solana-dex-cpi/programs/helium"
	"github.com/rovshanmuradov/solana-dex-cpi/programs/humidifi"
	"github.com/rovshanmuradov/solana-dex-cpi/programs/launchlab"
	"github.com/rovshanmuradov/solana-dex-cpi/programs/metadao"
	"github.com/rovshanmuradov/solana-dex-cpi/programs/meteora"
	"github.com/rovshanmuradov/solana-dex-cpi/programs/moonit"
	"github.com/rovshanmuradov/solana-dex-cpi/programs/openbookv2"
	"github.com/rovshanmuradov/solana-dex-cpi/programs/pancakeswap"
	"github.com/rovshanmuradov/solana-dex-cpi/programs/perena"
	"github.com/rovshanmuradov/solana-dex-cpi/programs/perps"
	"github.com/rovshanmuradov/solana-dex-cpi/programs/pumpamm"
	"github.com/rovshanmuradov/solana-dex-cpi/programs/pumpfun"
	"github.com/rovshanmuradov/solana-dex-cpi/programs/raydiumamm"
	"github.com/rovshanmuradov/solana-dex-cpi/programs/raydiumclmm"
	"github.com/rovshanmuradov/solana-dex-cpi/programs/raydiumcp"
	"github.com/rovshanmuradov/solana-dex-cpi/programs/saberdecimals"
	"github.com/rovshanmuradov/solana-dex-cpi/programs/solfi"
	"github.com/rovshanmuradov/solana-dex-cpi/programs/stabbleclmm"
	"github.com/rovshanmuradov/solana-dex-cpi/programs/stabblestable"
	"github.com/rovshanmuradov/solana-dex-cpi/programs/stabbleweighted"
	"github.com/rovshanmuradov/solana-dex-cpi/programs/vertigo"
	"github.com/rovshanmuradov/solana-dex-cpi/programs/virtuals"
	"github.com/rovshanmuradov/solana-dex-cpi/programs/whirlpool"
	"github.com/rovshanmuradov/solana-dex-cpi/programs/woofi"
	"github.com/rovshanmuradov/solana-dex-cpi/registry"
)

// All returns every supported protocol in roster order.
func All() []registry.Protocol {
	return []registry.Protocol{
		bonkswap.Protocol(),
		boopfun.Protocol(),
		byreal.Protocol(),
		carrot.Protocol(),
		dammv2.Protocol(),
		dbc.Protocol(),
		defituna.Protocol(),
		dlmm.Protocol(),
		gamma.Protocol(),
		guacswap.Protocol(),
		heaven.Protocol(),
		helium.Protocol(),
		humidifi.Protocol(),
		launchlab.Protocol(),
		metadao.Protocol(),
		meteora.Protocol(),
		moonit.Protocol(),
		openbookv2.Protocol(),
		pancakeswap.Protocol(),
		perena.Protocol(),
		perps.Protocol(),
		pumpamm.Protocol(),
		pumpfun.Protocol(),
		raydiumamm.Protocol(),
		raydiumclmm.Protocol(),
		raydiumcp.Protocol(),
		saberdecimals.Protocol(),
		solfi.Protocol(),
		stabbleclmm.Protocol(),
		stabblestable.Protocol(),
		stabbleweighted.Protocol(),
		vertigo.Protocol(),
		virtuals.Protocol(),
		whirlpool.Protocol(),
		woofi.Protocol(),
	}
}

// RegisterAll populates r with every supported protocol.
func RegisterAll(r *registry.Registry) error {
	for _, p := range All() {
		if err := r.Register(p); err != nil {
			return err
		}
	}
	return nil
}
