// Package chainxml loads a depletion chain from its hierarchical XML
// description into an immutable chain.Chain.
//
// The document carries two sections (the root element name is ignored):
//
//	<decay_constants>
//	  <nuclide_table name="U235" decay_modes="1" reactions="2" half_life="2.22e16">
//	    <decay_type target="Th231" type="alpha" branching_ratio="1.0"/>
//	    <reaction_type type="(n,gamma)" target="U236"/>
//	    <reaction_type type="fission" energy="193.4e6"/>
//	  </nuclide_table>
//	  ...
//	</decay_constants>
//	<neutron_fission_yields>
//	  <nuclides>2</nuclides>
//	  <precursor>1</precursor>
//	  <energy_points>1</energy_points>
//	  <precursor_name>U235</precursor_name>
//	  <energy>0.0253</energy>
//	  <nuclide_table name="Xe135">
//	    <fission_yields energy="0.0253"><fy_data>0.06</fy_data></fission_yields>
//	  </nuclide_table>
//	  ...
//	</neutron_fission_yields>
//
// Loading is fail-fast: a missing required attribute, a declared/present
// path-count mismatch, or a dangling nuclide reference aborts the load with
// a sentinel error and no partial Chain. Forward references between nuclide
// entries are legal; resolution is checked only once the whole document has
// been read.
package chainxml
